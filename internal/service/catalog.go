package service

import (
	"context"
	"time"

	"github.com/warewise/packaging-service/internal/domain/model"
	"github.com/warewise/packaging-service/internal/engine"
	"github.com/warewise/packaging-service/internal/repository"
	"github.com/warewise/packaging-service/internal/service/cache"
)

// CatalogService defines the interface for packaging catalog operations.
type CatalogService interface {
	// GetCatalog resolves the full packaging catalog for a product.
	GetCatalog(ctx context.Context, productID string) (*engine.Catalog, error)

	// GetHierarchy returns the packaging hierarchy tree for a product.
	GetHierarchy(ctx context.Context, productID string) ([]model.HierarchyNode, error)

	// InvalidateProduct drops the cached catalog snapshot for a product
	// (useful after packaging type changes).
	InvalidateProduct(productID string)
}

// CatalogOption configures a CatalogServiceImpl.
type CatalogOption func(*CatalogServiceImpl)

// CatalogServiceImpl implements CatalogService. Packaging snapshots are
// cached per product: catalogs change rarely but are read on every
// consolidation and pick plan.
type CatalogServiceImpl struct {
	packagingRepo repository.PackagingTypesRepositoryInterface
	cache         cache.Cache
}

// NewCatalogService creates a new catalog service with the given options.
func NewCatalogService(packagingRepo repository.PackagingTypesRepositoryInterface, opts ...CatalogOption) *CatalogServiceImpl {
	s := &CatalogServiceImpl{
		packagingRepo: packagingRepo,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithSnapshotCache enables packaging snapshot caching with the specified
// capacity and TTL.
func WithSnapshotCache(capacity int, ttl time.Duration) CatalogOption {
	return func(s *CatalogServiceImpl) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithSnapshotCacheInterface allows injecting a custom cache implementation.
func WithSnapshotCacheInterface(c cache.Cache) CatalogOption {
	return func(s *CatalogServiceImpl) {
		s.cache = c
	}
}

// GetCatalog resolves the full packaging catalog for a product.
func (s *CatalogServiceImpl) GetCatalog(ctx context.Context, productID string) (*engine.Catalog, error) {
	types, err := s.snapshot(ctx, productID)
	if err != nil {
		return nil, err
	}
	return engine.NewCatalog(types), nil
}

// GetHierarchy returns the packaging hierarchy tree for a product.
func (s *CatalogServiceImpl) GetHierarchy(ctx context.Context, productID string) ([]model.HierarchyNode, error) {
	catalog, err := s.GetCatalog(ctx, productID)
	if err != nil {
		return nil, err
	}
	return catalog.Hierarchy(productID)
}

// InvalidateProduct drops the cached snapshot for a product.
func (s *CatalogServiceImpl) InvalidateProduct(productID string) {
	if s.cache != nil {
		s.cache.Invalidate(productID)
	}
}

// snapshot returns the packaging types for a product, from cache when possible.
func (s *CatalogServiceImpl) snapshot(ctx context.Context, productID string) ([]model.PackagingType, error) {
	if s.cache != nil {
		if types, ok := s.cache.Get(productID); ok {
			return types, nil
		}
	}

	types, err := s.packagingRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(productID, types)
	}

	return types, nil
}
