package service

import (
	"context"

	"github.com/phrazzld/phonestore-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockCatalogStore mocks the store.CatalogStore interface
type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) ListActiveProductRows(ctx context.Context) ([]domain.ProductRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]domain.ProductRow)
	return rows, args.Error(1)
}

func (m *MockCatalogStore) GetActiveProductRows(ctx context.Context, id int64) ([]domain.ProductRow, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]domain.ProductRow)
	return rows, args.Error(1)
}

func (m *MockCatalogStore) ListCategoriesWithCounts(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}
