package service

import (
	"context"

	"github.com/guttosm/carton-service/internal/repository"
)

// Bounds for the packing efficiency scalar. Values outside the range are
// clamped on write so a typo can never disable the catalog or promise
// physically impossible packing.
const (
	MinPackingEfficiency = 0.1
	MaxPackingEfficiency = 1.0
)

// DefaultPackingEfficiency is used when no efficiency has ever been stored.
const DefaultPackingEfficiency = 0.8

// SettingsService manages the global packing configuration.
type SettingsService interface {
	// GetPackingEfficiency returns the stored efficiency, or the service
	// default when nothing has been stored yet.
	GetPackingEfficiency(ctx context.Context) (float64, error)

	// SetPackingEfficiency stores a new efficiency, clamped to the
	// allowed range.
	SetPackingEfficiency(ctx context.Context, value float64, updatedBy string) (*repository.PackSettings, error)
}

// SettingsServiceImpl implements SettingsService.
type SettingsServiceImpl struct {
	settingsRepo      repository.SettingsRepositoryInterface
	defaultEfficiency float64
}

// NewSettingsService creates a new settings service with the given default
// efficiency, itself clamped into the allowed range.
func NewSettingsService(settingsRepo repository.SettingsRepositoryInterface, defaultEfficiency float64) SettingsService {
	return &SettingsServiceImpl{
		settingsRepo:      settingsRepo,
		defaultEfficiency: clampEfficiency(defaultEfficiency),
	}
}

func (s *SettingsServiceImpl) GetPackingEfficiency(ctx context.Context) (float64, error) {
	if s.settingsRepo == nil {
		return 0, ErrRepositoryNotConfigured
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return 0, err
	}
	if settings == nil {
		return s.defaultEfficiency, nil
	}
	return clampEfficiency(settings.PackingEfficiency), nil
}

func (s *SettingsServiceImpl) SetPackingEfficiency(ctx context.Context, value float64, updatedBy string) (*repository.PackSettings, error) {
	if s.settingsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.settingsRepo.SetPackingEfficiency(ctx, clampEfficiency(value), updatedBy)
}

func clampEfficiency(value float64) float64 {
	if value < MinPackingEfficiency {
		return MinPackingEfficiency
	}
	if value > MaxPackingEfficiency {
		return MaxPackingEfficiency
	}
	return value
}
