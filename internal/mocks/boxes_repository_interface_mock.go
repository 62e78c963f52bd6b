// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/carton-service/internal/repository"
)

type MockBoxesRepositoryInterface struct {
	mock.Mock
}

func (m *MockBoxesRepositoryInterface) Create(ctx context.Context, doc *repository.BoxDocument) (*repository.BoxDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxDocument), args.Error(1)
}

func (m *MockBoxesRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*repository.BoxDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxDocument), args.Error(1)
}

func (m *MockBoxesRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, doc *repository.BoxDocument) (*repository.BoxDocument, error) {
	args := m.Called(ctx, id, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.BoxDocument), args.Error(1)
}

func (m *MockBoxesRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoxesRepositoryInterface) List(ctx context.Context) ([]repository.BoxDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BoxDocument), args.Error(1)
}
