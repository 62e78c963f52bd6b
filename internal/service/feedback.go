package service

import (
	"context"
	"errors"

	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/repository"
)

// ErrEmptyCombo is returned when a feedback rule has no packable items and
// no precomputed signature to attach to.
var ErrEmptyCombo = errors.New("feedback rule has no item composition")

// ErrCorrectionOnPositive is returned when a correct box is supplied on a
// rule that already says the box fits.
var ErrCorrectionOnPositive = errors.New("correct box only allowed when fits is false")

// RecordFeedbackInput captures one packer verdict about a box choice.
// Either Items or ComboSignature identifies the composition; when both are
// set the items win and the signature is recomputed.
type RecordFeedbackInput struct {
	Items          []model.Item
	ComboSignature string
	BoxID          string
	Fits           bool
	CorrectBoxID   string
	RecordedBy     string
}

// FeedbackService manages learned packing overrides.
type FeedbackService interface {
	Record(ctx context.Context, input RecordFeedbackInput) (*repository.FeedbackRuleDocument, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]repository.FeedbackRuleDocument, error)

	// Rules returns all stored rules as engine-facing domain types.
	Rules(ctx context.Context) ([]model.FeedbackRule, error)
}

// FeedbackServiceImpl implements FeedbackService.
type FeedbackServiceImpl struct {
	rulesRepo repository.FeedbackRulesRepositoryInterface
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(rulesRepo repository.FeedbackRulesRepositoryInterface) FeedbackService {
	return &FeedbackServiceImpl{
		rulesRepo: rulesRepo,
	}
}

// Record stores a new feedback rule. Rules are append-only: recording a new
// verdict for a combination never rewrites older ones, the engine resolves
// conflicts by recency at decision time.
func (s *FeedbackServiceImpl) Record(ctx context.Context, input RecordFeedbackInput) (*repository.FeedbackRuleDocument, error) {
	if s.rulesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if input.Fits && input.CorrectBoxID != "" {
		return nil, ErrCorrectionOnPositive
	}

	signature := input.ComboSignature
	if len(input.Items) > 0 {
		signature = model.ComboSignature(input.Items)
	}
	if signature == "" {
		return nil, ErrEmptyCombo
	}

	doc := &repository.FeedbackRuleDocument{
		ComboSignature: signature,
		BoxID:          input.BoxID,
		Fits:           input.Fits,
		CorrectBoxID:   input.CorrectBoxID,
		RecordedBy:     input.RecordedBy,
	}
	return s.rulesRepo.Create(ctx, doc)
}

func (s *FeedbackServiceImpl) Delete(ctx context.Context, id string) error {
	if s.rulesRepo == nil {
		return ErrRepositoryNotConfigured
	}
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.rulesRepo.Delete(ctx, oid)
}

func (s *FeedbackServiceImpl) List(ctx context.Context) ([]repository.FeedbackRuleDocument, error) {
	if s.rulesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.rulesRepo.List(ctx)
}

func (s *FeedbackServiceImpl) Rules(ctx context.Context) ([]model.FeedbackRule, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	rules := make([]model.FeedbackRule, len(docs))
	for i := range docs {
		rules[i] = docs[i].ToModel()
	}
	return rules, nil
}
