//go:build !integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/mocks"
	"github.com/guttosm/carton-service/internal/repository"
)

func TestProductSizeResolver_Resolve(t *testing.T) {
	mockRepo := new(mocks.MockProductSizesRepositoryInterface)
	resolver := NewProductSizeResolver(mockRepo, nil)

	mockRepo.On("GetBySKUs", mock.Anything, []string{"MUG-11OZ", "POSTER-A2"}).Return(map[string]repository.ProductSizeDocument{
		"MUG-11OZ": {SKU: "MUG-11OZ", Length: 5, Width: 3, Height: 3},
	}, nil)

	sizes, err := resolver.Resolve(context.Background(), []model.Item{
		{SKU: "MUG-11OZ", Quantity: 1},
		{SKU: "POSTER-A2", Quantity: 2},
	})
	require.NoError(t, err)

	// Known SKU resolves with derived volume, unknown SKU is absent.
	require.Contains(t, sizes, "MUG-11OZ")
	assert.InDelta(t, 45.0, sizes["MUG-11OZ"].Volume, 1e-9)
	assert.NotContains(t, sizes, "POSTER-A2")
}

func TestProductSizeResolver_DeduplicatesSKUs(t *testing.T) {
	mockRepo := new(mocks.MockProductSizesRepositoryInterface)
	resolver := NewProductSizeResolver(mockRepo, nil)

	mockRepo.On("GetBySKUs", mock.Anything, []string{"MUG-11OZ"}).Return(map[string]repository.ProductSizeDocument{
		"MUG-11OZ": {SKU: "MUG-11OZ", Length: 5, Width: 3, Height: 3},
	}, nil)

	_, err := resolver.Resolve(context.Background(), []model.Item{
		{SKU: "MUG-11OZ", Quantity: 1},
		{SKU: "MUG-11OZ", Quantity: 4},
		{SKU: "", Quantity: 1},
	})
	require.NoError(t, err)
	mockRepo.AssertNumberOfCalls(t, "GetBySKUs", 1)
}

func TestProductSizeResolver_CacheHitSkipsRepository(t *testing.T) {
	mockRepo := new(mocks.MockProductSizesRepositoryInterface)
	c := NewTTLCache(10, time.Minute)
	defer c.Stop()
	resolver := NewProductSizeResolver(mockRepo, c)

	mockRepo.On("GetBySKUs", mock.Anything, []string{"MUG-11OZ"}).Return(map[string]repository.ProductSizeDocument{
		"MUG-11OZ": {SKU: "MUG-11OZ", Length: 5, Width: 3, Height: 3},
	}, nil).Once()

	items := []model.Item{{SKU: "MUG-11OZ", Quantity: 1}}

	_, err := resolver.Resolve(context.Background(), items)
	require.NoError(t, err)

	sizes, err := resolver.Resolve(context.Background(), items)
	require.NoError(t, err)
	assert.Contains(t, sizes, "MUG-11OZ")
	mockRepo.AssertNumberOfCalls(t, "GetBySKUs", 1)
}

func TestProductSizeResolver_InvalidateSKU(t *testing.T) {
	mockRepo := new(mocks.MockProductSizesRepositoryInterface)
	c := NewTTLCache(10, time.Minute)
	defer c.Stop()
	resolver := NewProductSizeResolver(mockRepo, c)

	mockRepo.On("GetBySKUs", mock.Anything, []string{"MUG-11OZ"}).Return(map[string]repository.ProductSizeDocument{
		"MUG-11OZ": {SKU: "MUG-11OZ", Length: 5, Width: 3, Height: 3},
	}, nil).Twice()

	items := []model.Item{{SKU: "MUG-11OZ", Quantity: 1}}

	_, err := resolver.Resolve(context.Background(), items)
	require.NoError(t, err)

	resolver.InvalidateSKU("MUG-11OZ")

	_, err = resolver.Resolve(context.Background(), items)
	require.NoError(t, err)
	mockRepo.AssertNumberOfCalls(t, "GetBySKUs", 2)
}

func TestProductSizeResolver_NilRepository(t *testing.T) {
	resolver := NewProductSizeResolver(nil, nil)

	_, err := resolver.Resolve(context.Background(), []model.Item{{SKU: "MUG-11OZ", Quantity: 1}})
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}
