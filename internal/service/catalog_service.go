package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/phonestore-api/internal/domain"
	"github.com/phrazzld/phonestore-api/internal/platform/logger"
	"github.com/phrazzld/phonestore-api/internal/store"
)

const componentName = "catalog_service"

// CatalogService provides the read operations of the storefront catalog.
type CatalogService interface {
	// ListProducts returns every active product with its images, ordered by ID.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// GetProduct returns the active product with the given ID.
	// Returns ErrProductNotFound if it does not exist or is not active.
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)

	// ListCategories returns every category with its count of active products.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	catalogStore store.CatalogStore
	logger       *slog.Logger
}

// NewCatalogService creates a new CatalogService.
// It returns an error if the store is nil.
func NewCatalogService(catalogStore store.CatalogStore, logger *slog.Logger) (CatalogService, error) {
	if catalogStore == nil {
		return nil, errors.New("catalog service create_service failed: catalogStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &catalogServiceImpl{
		catalogStore: catalogStore,
		logger:       logger.With("component", componentName),
	}, nil
}

// ListProducts implements CatalogService.ListProducts.
func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	log := logger.ForComponent(ctx, s.logger, componentName)

	rows, err := s.catalogStore.ListActiveProductRows(ctx)
	if err != nil {
		return nil, NewCatalogServiceError("list_products", err)
	}

	products := domain.AggregateProducts(rows)
	log.Debug("products aggregated",
		"row_count", len(rows),
		"product_count", len(products))
	return products, nil
}

// GetProduct implements CatalogService.GetProduct.
func (s *catalogServiceImpl) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	log := logger.ForComponent(ctx, s.logger, componentName)

	rows, err := s.catalogStore.GetActiveProductRows(ctx, id)
	if err != nil {
		return nil, NewCatalogServiceError("get_product", err)
	}

	product, ok := domain.AggregateProduct(rows)
	if !ok {
		log.Debug("no rows for product", "product_id", id)
		return nil, NewCatalogServiceError("get_product", store.ErrProductNotFound)
	}

	return &product, nil
}

// ListCategories implements CatalogService.ListCategories.
func (s *catalogServiceImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.catalogStore.ListCategoriesWithCounts(ctx)
	if err != nil {
		return nil, NewCatalogServiceError("list_categories", err)
	}

	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}
