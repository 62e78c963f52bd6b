package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/carton-service/internal/domain/model"
)

// ProductSizeDocument represents a per-SKU product footprint document.
// The product catalog owns these records; the carton service only reads them.
type ProductSizeDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SKU         string             `bson:"sku" json:"sku"`
	Length      float64            `bson:"length" json:"length"`
	Width       float64            `bson:"width" json:"width"`
	Height      float64            `bson:"height" json:"height"`
	Weight      float64            `bson:"weight,omitempty" json:"weight,omitempty"`
	SingleBoxID string             `bson:"single_box_id,omitempty" json:"single_box_id,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ToModel converts the document into the engine-facing domain type.
// The unit volume is derived; a malformed footprint yields zero volume so it
// behaves like an unresolved SKU rather than blocking the decision.
func (d *ProductSizeDocument) ToModel() model.ProductSize {
	dims := model.Dimensions{Length: d.Length, Width: d.Width, Height: d.Height}
	volume, err := model.ComputeVolume(dims)
	if err != nil {
		volume = 0
	}
	return model.ProductSize{
		SKU:         d.SKU,
		Dimensions:  dims,
		Weight:      d.Weight,
		Volume:      volume,
		SingleBoxID: d.SingleBoxID,
	}
}

// ProductSizesRepository provides read access to product footprints.
type ProductSizesRepository struct {
	collection *mongo.Collection
}

// NewProductSizesRepository creates a new product sizes repository.
func NewProductSizesRepository(db *MongoDB) *ProductSizesRepository {
	return &ProductSizesRepository{
		collection: db.ProductSizes,
	}
}

// GetBySKU returns the footprint for one SKU, or nil when the SKU is unknown.
func (r *ProductSizesRepository) GetBySKU(ctx context.Context, sku string) (*ProductSizeDocument, error) {
	var doc ProductSizeDocument
	err := r.collection.FindOne(ctx, bson.M{"sku": sku}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetBySKUs returns the footprints for the given SKUs, keyed by SKU.
// Unknown SKUs are simply absent from the result.
func (r *ProductSizesRepository) GetBySKUs(ctx context.Context, skus []string) (map[string]ProductSizeDocument, error) {
	if len(skus) == 0 {
		return map[string]ProductSizeDocument{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"sku": bson.M{"$in": skus}})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ProductSizeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	result := make(map[string]ProductSizeDocument, len(docs))
	for _, doc := range docs {
		result[doc.SKU] = doc
	}
	return result, nil
}
