// Package cache defines the caching contract used by the product-size resolver.
package cache

import "github.com/guttosm/carton-service/internal/domain/model"

// Cache defines the interface for product-size cache operations.
type Cache interface {
	Get(sku string) (model.ProductSize, bool)
	Set(sku string, size model.ProductSize)
	Invalidate(sku string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
