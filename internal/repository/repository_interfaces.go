// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoxesRepositoryInterface defines the interface for carton catalog operations.
type BoxesRepositoryInterface interface {
	Create(ctx context.Context, doc *BoxDocument) (*BoxDocument, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*BoxDocument, error)
	Update(ctx context.Context, id primitive.ObjectID, doc *BoxDocument) (*BoxDocument, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context) ([]BoxDocument, error)
}

// FeedbackRulesRepositoryInterface defines the interface for learned override operations.
type FeedbackRulesRepositoryInterface interface {
	Create(ctx context.Context, doc *FeedbackRuleDocument) (*FeedbackRuleDocument, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context) ([]FeedbackRuleDocument, error)
}

// SettingsRepositoryInterface defines the interface for packing configuration operations.
type SettingsRepositoryInterface interface {
	Get(ctx context.Context) (*PackSettings, error)
	SetPackingEfficiency(ctx context.Context, value float64, updatedBy string) (*PackSettings, error)
}

// ProductSizesRepositoryInterface defines the interface for product footprint lookups.
type ProductSizesRepositoryInterface interface {
	GetBySKU(ctx context.Context, sku string) (*ProductSizeDocument, error)
	GetBySKUs(ctx context.Context, skus []string) (map[string]ProductSizeDocument, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
