// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/carton-service/internal/circuitbreaker"
)

// BoxesRepositoryWithCircuitBreaker wraps BoxesRepository with circuit breaker protection.
// Catalog reads feed every selection decision, so an open circuit surfaces as
// an error instead of letting requests pile up against a dead database.
type BoxesRepositoryWithCircuitBreaker struct {
	repo           *BoxesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBoxesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewBoxesRepositoryWithCircuitBreaker(repo *BoxesRepository, cb *circuitbreaker.CircuitBreaker) *BoxesRepositoryWithCircuitBreaker {
	return &BoxesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a box with circuit breaker protection.
func (r *BoxesRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *BoxDocument) (*BoxDocument, error) {
	var result *BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, doc)
		return cbErr
	})
	return result, err
}

// GetByID returns a box with circuit breaker protection.
func (r *BoxesRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id primitive.ObjectID) (*BoxDocument, error) {
	var result *BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// Update updates a box with circuit breaker protection.
func (r *BoxesRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, doc *BoxDocument) (*BoxDocument, error) {
	var result *BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, doc)
		return cbErr
	})
	return result, err
}

// Delete removes a box with circuit breaker protection.
func (r *BoxesRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// List returns the catalog with circuit breaker protection.
func (r *BoxesRepositoryWithCircuitBreaker) List(ctx context.Context) ([]BoxDocument, error) {
	var result []BoxDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *BoxesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If the circuit is open the entry is dropped; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If the circuit is open the entries are dropped; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns matching log entry counts with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
