package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// packSettingsKey is the well-known key of the single settings document.
const packSettingsKey = "packing"

// PackSettings represents the global packing configuration document.
type PackSettings struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key               string             `bson:"key" json:"-"`
	PackingEfficiency float64            `bson:"packing_efficiency" json:"packing_efficiency"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
	UpdatedBy         string             `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// SettingsRepository provides access to the global packing configuration.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *MongoDB) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Settings,
	}
}

// Get returns the packing settings document, or nil when none exists yet.
func (r *SettingsRepository) Get(ctx context.Context) (*PackSettings, error) {
	var settings PackSettings
	err := r.collection.FindOne(ctx, bson.M{"key": packSettingsKey}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// SetPackingEfficiency upserts the single settings document with the given
// value. Range clamping is the service layer's job; the repository stores
// what it is given.
func (r *SettingsRepository) SetPackingEfficiency(ctx context.Context, value float64, updatedBy string) (*PackSettings, error) {
	update := bson.M{
		"$set": bson.M{
			"packing_efficiency": value,
			"updated_at":         time.Now(),
			"updated_by":         updatedBy,
		},
		"$setOnInsert": bson.M{
			"key": packSettingsKey,
		},
	}

	var settings PackSettings
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"key": packSettingsKey},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
