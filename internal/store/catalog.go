package store

import (
	"context"

	"github.com/phrazzld/phonestore-api/internal/domain"
)

// CatalogStore is the query gateway for products and categories.
// Every method is a single read; none of them mutate state.
type CatalogStore interface {
	// ListActiveProductRows returns one row per (active product, image) pair,
	// plus one row with a nil ImageName for each active product without images.
	// Rows are ordered by product ID ascending.
	ListActiveProductRows(ctx context.Context) ([]domain.ProductRow, error)

	// GetActiveProductRows returns the join rows of a single active product.
	// Returns ErrProductNotFound if no active product has the given ID.
	GetActiveProductRows(ctx context.Context, id int64) ([]domain.ProductRow, error)

	// ListCategoriesWithCounts returns every category with the number of active
	// products referencing it. Categories without active products report 0.
	ListCategoriesWithCounts(ctx context.Context) ([]domain.Category, error)
}
