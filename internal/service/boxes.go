package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ErrInvalidID is returned when an identifier is not a valid object id.
var ErrInvalidID = errors.New("invalid identifier")

// BoxService provides carton catalog operations.
type BoxService interface {
	Create(ctx context.Context, doc *repository.BoxDocument) (*repository.BoxDocument, error)
	GetByID(ctx context.Context, id string) (*repository.BoxDocument, error)
	Update(ctx context.Context, id string, doc *repository.BoxDocument) (*repository.BoxDocument, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]repository.BoxDocument, error)

	// Catalog returns the full catalog as engine-facing domain boxes.
	Catalog(ctx context.Context) ([]model.Box, error)
}

// BoxServiceImpl implements BoxService.
type BoxServiceImpl struct {
	boxesRepo repository.BoxesRepositoryInterface
}

// NewBoxService creates a new carton catalog service.
func NewBoxService(boxesRepo repository.BoxesRepositoryInterface) BoxService {
	return &BoxServiceImpl{
		boxesRepo: boxesRepo,
	}
}

func (s *BoxServiceImpl) Create(ctx context.Context, doc *repository.BoxDocument) (*repository.BoxDocument, error) {
	if s.boxesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.boxesRepo.Create(ctx, doc)
}

func (s *BoxServiceImpl) GetByID(ctx context.Context, id string) (*repository.BoxDocument, error) {
	if s.boxesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.boxesRepo.GetByID(ctx, oid)
}

func (s *BoxServiceImpl) Update(ctx context.Context, id string, doc *repository.BoxDocument) (*repository.BoxDocument, error) {
	if s.boxesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.boxesRepo.Update(ctx, oid, doc)
}

// Delete removes a box from the catalog. Feedback rules that reference the
// box are left in place and become inert until the engine encounters them.
func (s *BoxServiceImpl) Delete(ctx context.Context, id string) error {
	if s.boxesRepo == nil {
		return ErrRepositoryNotConfigured
	}
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.boxesRepo.Delete(ctx, oid)
}

func (s *BoxServiceImpl) List(ctx context.Context) ([]repository.BoxDocument, error) {
	if s.boxesRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.boxesRepo.List(ctx)
}

func (s *BoxServiceImpl) Catalog(ctx context.Context) ([]model.Box, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	boxes := make([]model.Box, len(docs))
	for i := range docs {
		boxes[i] = docs[i].ToModel()
	}
	return boxes, nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
