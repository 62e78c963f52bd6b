package service

import (
	"context"
	"time"

	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/repository"
	"github.com/guttosm/carton-service/internal/service/cache"
)

// ProductSizeResolver resolves the physical footprint of order items,
// consulting an in-process cache before the repository. A SKU with no
// stored size is simply absent from the result; the engine treats it as
// zero volume and flags it.
type ProductSizeResolver interface {
	Resolve(ctx context.Context, items []model.Item) (map[string]model.ProductSize, error)
	InvalidateSKU(sku string)
}

// ProductSizeResolverImpl implements ProductSizeResolver.
type ProductSizeResolverImpl struct {
	sizesRepo repository.ProductSizesRepositoryInterface
	cache     cache.Cache
}

// NewProductSizeResolver creates a resolver backed by the given repository
// and cache. The cache may be nil, in which case every lookup hits storage.
func NewProductSizeResolver(sizesRepo repository.ProductSizesRepositoryInterface, c cache.Cache) ProductSizeResolver {
	return &ProductSizeResolverImpl{
		sizesRepo: sizesRepo,
		cache:     c,
	}
}

// NewTTLCache creates the default product-size cache used by the resolver.
func NewTTLCache(capacity int, ttl time.Duration) cache.Cache {
	return newTTLCache(capacity, ttl)
}

func (r *ProductSizeResolverImpl) Resolve(ctx context.Context, items []model.Item) (map[string]model.ProductSize, error) {
	if r.sizesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	sizes := make(map[string]model.ProductSize, len(items))
	var misses []string
	seen := make(map[string]bool, len(items))

	for _, item := range items {
		if item.SKU == "" || seen[item.SKU] {
			continue
		}
		seen[item.SKU] = true

		if r.cache != nil {
			if size, ok := r.cache.Get(item.SKU); ok {
				sizes[item.SKU] = size
				continue
			}
		}
		misses = append(misses, item.SKU)
	}

	if len(misses) == 0 {
		return sizes, nil
	}

	docs, err := r.sizesRepo.GetBySKUs(ctx, misses)
	if err != nil {
		return nil, err
	}

	for sku, doc := range docs {
		size := doc.ToModel()
		sizes[sku] = size
		if r.cache != nil {
			r.cache.Set(sku, size)
		}
	}

	return sizes, nil
}

// InvalidateSKU drops a cached size, used when product data changes.
func (r *ProductSizeResolverImpl) InvalidateSKU(sku string) {
	if r.cache != nil {
		r.cache.Invalidate(sku)
	}
}
