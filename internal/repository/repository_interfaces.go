// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
	"time"

	"github.com/warewise/packaging-service/internal/domain/model"
)

// ProductsRepositoryInterface defines the interface for product repository operations.
type ProductsRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)
	Upsert(ctx context.Context, product *model.Product) error
	List(ctx context.Context, activeOnly bool, limit int) ([]model.Product, error)
}

// PackagingTypesRepositoryInterface defines the interface for packaging catalog operations.
type PackagingTypesRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.PackagingType, error)
	ListByProduct(ctx context.Context, productID string) ([]model.PackagingType, error)
	Upsert(ctx context.Context, pt *model.PackagingType) error
	Deactivate(ctx context.Context, id string) error
}

// StockRecordsRepositoryInterface defines the interface for stock record operations.
type StockRecordsRepositoryInterface interface {
	ListByProduct(ctx context.Context, productID string) ([]model.StockRecord, error)
	Upsert(ctx context.Context, record *model.StockRecord) error
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
}

// PalletsRepositoryInterface defines the interface for pallet repository operations.
type PalletsRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*model.Pallet, error)
	ListAvailable(ctx context.Context) ([]model.Pallet, error)
	Upsert(ctx context.Context, pallet *model.Pallet) error
	SetStatus(ctx context.Context, id, status string) error
	RecordOutcome(ctx context.Context, outcome *CompositionOutcome) error
	RefreshEfficiency(ctx context.Context, palletID string, window time.Duration) (float64, error)
	ListOutcomes(ctx context.Context, palletID string, limit int) ([]CompositionOutcome, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
