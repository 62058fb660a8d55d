// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/warewise/packaging-service/internal/circuitbreaker"
	"github.com/warewise/packaging-service/internal/domain/model"
)

// PackagingTypesRepositoryWithCircuitBreaker wraps PackagingTypesRepository with circuit breaker protection.
type PackagingTypesRepositoryWithCircuitBreaker struct {
	repo           *PackagingTypesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPackagingTypesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPackagingTypesRepositoryWithCircuitBreaker(repo *PackagingTypesRepository, cb *circuitbreaker.CircuitBreaker) *PackagingTypesRepositoryWithCircuitBreaker {
	return &PackagingTypesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetByID returns a packaging type with circuit breaker protection.
func (r *PackagingTypesRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*model.PackagingType, error) {
	var result *model.PackagingType
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// ListByProduct returns a product's packaging types with circuit breaker protection.
// When the circuit is open the error propagates: there is no safe default
// catalog to fall back to, callers serve from cache or fail the request.
func (r *PackagingTypesRepositoryWithCircuitBreaker) ListByProduct(ctx context.Context, productID string) ([]model.PackagingType, error) {
	var result []model.PackagingType
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListByProduct(ctx, productID)
		return cbErr
	})
	return result, err
}

// Upsert creates or replaces a packaging type with circuit breaker protection.
func (r *PackagingTypesRepositoryWithCircuitBreaker) Upsert(ctx context.Context, pt *model.PackagingType) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, pt)
	})
}

// Deactivate marks a packaging type inactive with circuit breaker protection.
func (r *PackagingTypesRepositoryWithCircuitBreaker) Deactivate(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Deactivate(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PackagingTypesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
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
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
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

// Count returns the count of log entries with circuit breaker protection.
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
