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

// FeedbackRuleDocument represents a learned packing override document.
//
// BoxID and CorrectBoxID are stored as plain strings rather than object
// references: rules outlive catalog deletions and the engine resolves them
// against the live catalog at decision time.
type FeedbackRuleDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ComboSignature string             `bson:"combo_signature" json:"combo_signature"`
	BoxID          string             `bson:"box_id" json:"box_id"`
	Fits           bool               `bson:"fits" json:"fits"`
	CorrectBoxID   string             `bson:"correct_box_id,omitempty" json:"correct_box_id,omitempty"`
	RecordedBy     string             `bson:"recorded_by,omitempty" json:"recorded_by,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// ToModel converts the document into the engine-facing domain type.
func (d *FeedbackRuleDocument) ToModel() model.FeedbackRule {
	return model.FeedbackRule{
		ID:             d.ID.Hex(),
		ComboSignature: d.ComboSignature,
		BoxID:          d.BoxID,
		Fits:           d.Fits,
		CorrectBoxID:   d.CorrectBoxID,
		RecordedBy:     d.RecordedBy,
		CreatedAt:      d.CreatedAt,
	}
}

// FeedbackRulesRepository provides operations over learned packing overrides.
type FeedbackRulesRepository struct {
	collection *mongo.Collection
}

// NewFeedbackRulesRepository creates a new feedback rules repository.
func NewFeedbackRulesRepository(db *MongoDB) *FeedbackRulesRepository {
	return &FeedbackRulesRepository{
		collection: db.FeedbackRules,
	}
}

// Create inserts a new feedback rule. No uniqueness is enforced per
// (signature, box); the engine reconciles duplicates at decision time.
func (r *FeedbackRulesRepository) Create(ctx context.Context, doc *FeedbackRuleDocument) (*FeedbackRuleDocument, error) {
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete removes a rule (administrative retraction of a bad correction).
// Fails with ErrNotFound if the rule does not exist.
func (r *FeedbackRulesRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every feedback rule. The rule set is small enough to load
// wholesale per decision; a linear scan beats query machinery here.
func (r *FeedbackRulesRepository) List(ctx context.Context) ([]FeedbackRuleDocument, error) {
	opts := options.Find().SetSort(bson.M{"created_at": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []FeedbackRuleDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
