// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/carton-service/internal/repository"
)

type MockSettingsRepositoryInterface struct {
	mock.Mock
}

func (m *MockSettingsRepositoryInterface) Get(ctx context.Context) (*repository.PackSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PackSettings), args.Error(1)
}

func (m *MockSettingsRepositoryInterface) SetPackingEfficiency(ctx context.Context, value float64, updatedBy string) (*repository.PackSettings, error) {
	args := m.Called(ctx, value, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PackSettings), args.Error(1)
}
