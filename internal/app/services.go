// Package app provides service initialization.
package app

import (
	"github.com/guttosm/carton-service/config"
	"github.com/guttosm/carton-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Selector        service.SelectorService
	BoxService      service.BoxService
	FeedbackService service.FeedbackService
	SettingsService service.SettingsService
	Resolver        service.ProductSizeResolver
	Exclusions      *service.ExclusionFilter
}

// InitializeServices initializes business logic services. Storage-backed
// services receive nil repositories when the database is disabled and fail
// their operations gracefully.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	components := &ServiceComponents{
		Selector: service.NewSelectorService(),
		Exclusions: service.NewExclusionFilter(
			cfg.Packing.NonPackableSKUPrefixes,
			cfg.Packing.NonPackableNameMarkers,
		),
	}

	if dbComponents != nil {
		components.BoxService = service.NewBoxService(dbComponents.BoxesRepo)
		components.FeedbackService = service.NewFeedbackService(dbComponents.FeedbackRulesRepo)
		components.SettingsService = service.NewSettingsService(dbComponents.SettingsRepo, cfg.Packing.DefaultEfficiency)
		components.Resolver = service.NewProductSizeResolver(
			dbComponents.ProductSizesRepo,
			service.NewTTLCache(cfg.Cache.Size, cfg.Cache.TTL),
		)
	} else {
		components.BoxService = service.NewBoxService(nil)
		components.FeedbackService = service.NewFeedbackService(nil)
		components.SettingsService = service.NewSettingsService(nil, cfg.Packing.DefaultEfficiency)
		components.Resolver = service.NewProductSizeResolver(nil, service.NewTTLCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	return components
}
