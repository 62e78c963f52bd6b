// Package repository provides data access for the carton catalog.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/carton-service/internal/domain/model"
)

// BoxDocument represents a carton catalog document.
//
// Volume is always recomputed from the dimensions inside the repository
// write paths; callers cannot set it independently.
type BoxDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Length        float64            `bson:"length" json:"length"`
	Width         float64            `bson:"width" json:"width"`
	Height        float64            `bson:"height" json:"height"`
	Volume        float64            `bson:"volume" json:"volume"`
	Priority      int                `bson:"priority" json:"priority"`
	Active        bool               `bson:"active" json:"active"`
	InStock       bool               `bson:"in_stock" json:"in_stock"`
	SingleCupOnly bool               `bson:"single_cup_only" json:"single_cup_only"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// ToModel converts the document into the engine-facing domain type.
func (d *BoxDocument) ToModel() model.Box {
	return model.Box{
		ID:   d.ID.Hex(),
		Name: d.Name,
		Dimensions: model.Dimensions{
			Length: d.Length,
			Width:  d.Width,
			Height: d.Height,
		},
		Volume:        d.Volume,
		Priority:      d.Priority,
		Active:        d.Active,
		InStock:       d.InStock,
		SingleCupOnly: d.SingleCupOnly,
	}
}

// BoxesRepository provides CRUD operations over the carton catalog.
type BoxesRepository struct {
	collection *mongo.Collection
}

// NewBoxesRepository creates a new boxes repository.
func NewBoxesRepository(db *MongoDB) *BoxesRepository {
	return &BoxesRepository{
		collection: db.Boxes,
	}
}

// Create inserts a new box. The volume is derived from the dimensions and
// the insert fails with model.ErrInvalidDimension on a non-positive one.
func (r *BoxesRepository) Create(ctx context.Context, doc *BoxDocument) (*BoxDocument, error) {
	volume, err := model.ComputeVolume(model.Dimensions{
		Length: doc.Length,
		Width:  doc.Width,
		Height: doc.Height,
	})
	if err != nil {
		return nil, err
	}

	doc.ID = primitive.NewObjectID()
	doc.Volume = volume
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = doc.CreatedAt

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetByID returns a single box, or ErrNotFound.
func (r *BoxesRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*BoxDocument, error) {
	var doc BoxDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Update replaces the mutable fields of an existing box and recomputes its
// volume from the new dimensions. Fails with ErrNotFound if the box is gone.
func (r *BoxesRepository) Update(ctx context.Context, id primitive.ObjectID, doc *BoxDocument) (*BoxDocument, error) {
	volume, err := model.ComputeVolume(model.Dimensions{
		Length: doc.Length,
		Width:  doc.Width,
		Height: doc.Height,
	})
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"name":            doc.Name,
			"length":          doc.Length,
			"width":           doc.Width,
			"height":          doc.Height,
			"volume":          volume,
			"priority":        doc.Priority,
			"active":          doc.Active,
			"in_stock":        doc.InStock,
			"single_cup_only": doc.SingleCupOnly,
			"updated_at":      time.Now(),
		},
	}

	var updated BoxDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a box from the catalog. Feedback rules referencing the box
// are left untouched; the engine skips rules whose box no longer resolves.
func (r *BoxesRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the whole catalog, ordered by priority then volume so the
// result mirrors candidate ordering in the selection engine.
func (r *BoxesRepository) List(ctx context.Context) ([]BoxDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "priority", Value: 1}, {Key: "volume", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []BoxDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
