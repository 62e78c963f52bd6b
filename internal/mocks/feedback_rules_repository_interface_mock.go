// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/carton-service/internal/repository"
)

type MockFeedbackRulesRepositoryInterface struct {
	mock.Mock
}

func (m *MockFeedbackRulesRepositoryInterface) Create(ctx context.Context, doc *repository.FeedbackRuleDocument) (*repository.FeedbackRuleDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.FeedbackRuleDocument), args.Error(1)
}

func (m *MockFeedbackRulesRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFeedbackRulesRepositoryInterface) List(ctx context.Context) ([]repository.FeedbackRuleDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FeedbackRuleDocument), args.Error(1)
}
