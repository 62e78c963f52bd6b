//go:build !integration

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/carton-service/internal/mocks"
	"github.com/guttosm/carton-service/internal/repository"
)

func TestSettingsService_GetPackingEfficiency_DefaultWhenUnset(t *testing.T) {
	mockRepo := new(mocks.MockSettingsRepositoryInterface)
	svc := NewSettingsService(mockRepo, 0.8)

	mockRepo.On("Get", mock.Anything).Return(nil, nil)

	got, err := svc.GetPackingEfficiency(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.8, got, 1e-9)
}

func TestSettingsService_GetPackingEfficiency_Stored(t *testing.T) {
	mockRepo := new(mocks.MockSettingsRepositoryInterface)
	svc := NewSettingsService(mockRepo, 0.8)

	mockRepo.On("Get", mock.Anything).Return(&repository.PackSettings{PackingEfficiency: 0.65}, nil)

	got, err := svc.GetPackingEfficiency(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.65, got, 1e-9)
}

func TestSettingsService_SetPackingEfficiency_Clamping(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{name: "in range", value: 0.75, want: 0.75},
		{name: "below minimum", value: 0.01, want: MinPackingEfficiency},
		{name: "zero", value: 0, want: MinPackingEfficiency},
		{name: "negative", value: -3, want: MinPackingEfficiency},
		{name: "above maximum", value: 1.5, want: MaxPackingEfficiency},
		{name: "exact bounds", value: 1.0, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockSettingsRepositoryInterface)
			svc := NewSettingsService(mockRepo, 0.8)

			mockRepo.On("SetPackingEfficiency", mock.Anything, tt.want, "admin").
				Return(&repository.PackSettings{PackingEfficiency: tt.want}, nil)

			got, err := svc.SetPackingEfficiency(context.Background(), tt.value, "admin")
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got.PackingEfficiency, 1e-9)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSettingsService_DefaultIsClamped(t *testing.T) {
	mockRepo := new(mocks.MockSettingsRepositoryInterface)
	svc := NewSettingsService(mockRepo, 7.5)

	mockRepo.On("Get", mock.Anything).Return(nil, nil)

	got, err := svc.GetPackingEfficiency(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, MaxPackingEfficiency, got, 1e-9)
}

func TestSettingsService_NilRepository(t *testing.T) {
	svc := NewSettingsService(nil, 0.8)

	_, err := svc.GetPackingEfficiency(context.Background())
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}
