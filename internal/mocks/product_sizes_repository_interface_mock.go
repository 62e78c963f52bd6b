// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/carton-service/internal/repository"
)

type MockProductSizesRepositoryInterface struct {
	mock.Mock
}

func (m *MockProductSizesRepositoryInterface) GetBySKU(ctx context.Context, sku string) (*repository.ProductSizeDocument, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ProductSizeDocument), args.Error(1)
}

func (m *MockProductSizesRepositoryInterface) GetBySKUs(ctx context.Context, skus []string) (map[string]repository.ProductSizeDocument, error) {
	args := m.Called(ctx, skus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]repository.ProductSizeDocument), args.Error(1)
}
