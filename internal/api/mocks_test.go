package api

import (
	"context"

	"github.com/phrazzld/phonestore-api/internal/domain"
)

// MockCatalogService is a mock implementation of service.CatalogService for testing
type MockCatalogService struct {
	ListProductsFn   func(ctx context.Context) ([]domain.Product, error)
	GetProductFn     func(ctx context.Context, id int64) (*domain.Product, error)
	ListCategoriesFn func(ctx context.Context) ([]domain.Category, error)
}

// ListProducts implements service.CatalogService
func (m *MockCatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.ListProductsFn != nil {
		return m.ListProductsFn(ctx)
	}
	return []domain.Product{}, nil
}

// GetProduct implements service.CatalogService
func (m *MockCatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if m.GetProductFn != nil {
		return m.GetProductFn(ctx, id)
	}
	return nil, nil
}

// ListCategories implements service.CatalogService
func (m *MockCatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if m.ListCategoriesFn != nil {
		return m.ListCategoriesFn(ctx)
	}
	return []domain.Category{}, nil
}
