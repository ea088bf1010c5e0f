package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/phonestore-api/internal/domain"
	"github.com/phrazzld/phonestore-api/internal/platform/logger"
	"github.com/phrazzld/phonestore-api/internal/redact"
	"github.com/phrazzld/phonestore-api/internal/store"
	"github.com/shopspring/decimal"
)

const componentName = "catalog_store"

const (
	listActiveProductsQuery = `
		SELECT p.id, p.name, p.price, p.stock, p.description, p.category_id,
		       pi.image AS image_name
		FROM products p
		LEFT JOIN product_images pi ON p.id = pi.product_id
		WHERE p.status = $1
		ORDER BY p.id, pi.id
	`

	getActiveProductQuery = `
		SELECT p.id, p.name, p.price, p.stock, p.description, p.category_id,
		       pi.image AS image_name
		FROM products p
		LEFT JOIN product_images pi ON p.id = pi.product_id
		WHERE p.status = $1 AND p.id = $2
		ORDER BY pi.id
	`

	listCategoriesQuery = `
		SELECT c.id, c.name, COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id AND p.status = $1
		GROUP BY c.id, c.name
		ORDER BY c.id
	`
)

// productRecord declares how each column of the product/image join is
// decoded. Text columns always land in string types, never in byte slices or
// numbers; nullable columns use the sql.Null* wrappers.
type productRecord struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	Price       decimal.Decimal `db:"price"`
	Stock       int64           `db:"stock"`
	Description sql.NullString  `db:"description"`
	CategoryID  sql.NullInt64   `db:"category_id"`
	ImageName   sql.NullString  `db:"image_name"`
}

func (r productRecord) toDomain() domain.ProductRow {
	row := domain.ProductRow{
		ID:    r.ID,
		Name:  r.Name,
		Price: r.Price,
		Stock: r.Stock,
	}
	if r.Description.Valid {
		description := r.Description.String
		row.Description = &description
	}
	if r.CategoryID.Valid {
		categoryID := r.CategoryID.Int64
		row.CategoryID = &categoryID
	}
	if r.ImageName.Valid {
		image := r.ImageName.String
		row.ImageName = &image
	}
	return row
}

// categoryRecord declares the column types of the category count query.
type categoryRecord struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	ProductCount int64  `db:"product_count"`
}

// PostgresCatalogStore implements the store.CatalogStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCatalogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCatalogStore creates a new PostgreSQL implementation of the CatalogStore interface.
// It accepts a pool that is opened and closed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCatalogStore(db store.DBTX, logger *slog.Logger) *PostgresCatalogStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCatalogStore{
		db:     db,
		logger: logger.With(slog.String("component", componentName)),
	}
}

// Ensure PostgresCatalogStore implements store.CatalogStore interface
var _ store.CatalogStore = (*PostgresCatalogStore)(nil)

// ListActiveProductRows implements store.CatalogStore.ListActiveProductRows.
func (s *PostgresCatalogStore) ListActiveProductRows(ctx context.Context) ([]domain.ProductRow, error) {
	log := logger.ForComponent(ctx, s.logger, componentName)

	var records []productRecord
	if err := s.db.SelectContext(ctx, &records, listActiveProductsQuery, domain.ProductStatusActive); err != nil {
		s.logQueryError(log, "list active products", err)
		return nil, MapError("product", "list", err)
	}

	rows := make([]domain.ProductRow, len(records))
	for i, rec := range records {
		rows[i] = rec.toDomain()
	}

	log.Debug("listed active product rows", slog.Int("row_count", len(rows)))
	return rows, nil
}

// GetActiveProductRows implements store.CatalogStore.GetActiveProductRows.
// Returns store.ErrProductNotFound if no active product has the given ID.
func (s *PostgresCatalogStore) GetActiveProductRows(ctx context.Context, id int64) ([]domain.ProductRow, error) {
	log := logger.ForComponent(ctx, s.logger, componentName)

	var records []productRecord
	if err := s.db.SelectContext(ctx, &records, getActiveProductQuery, domain.ProductStatusActive, id); err != nil {
		s.logQueryError(log, "get active product", err, slog.Int64("product_id", id))
		return nil, MapError("product", "get", err)
	}

	if len(records) == 0 {
		log.Debug("active product not found", slog.Int64("product_id", id))
		return nil, store.ErrProductNotFound
	}

	rows := make([]domain.ProductRow, len(records))
	for i, rec := range records {
		rows[i] = rec.toDomain()
	}

	log.Debug("retrieved active product rows",
		slog.Int64("product_id", id),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// ListCategoriesWithCounts implements store.CatalogStore.ListCategoriesWithCounts.
func (s *PostgresCatalogStore) ListCategoriesWithCounts(ctx context.Context) ([]domain.Category, error) {
	log := logger.ForComponent(ctx, s.logger, componentName)

	var records []categoryRecord
	if err := s.db.SelectContext(ctx, &records, listCategoriesQuery, domain.ProductStatusActive); err != nil {
		s.logQueryError(log, "list categories", err)
		return nil, MapError("category", "list", err)
	}

	categories := make([]domain.Category, len(records))
	for i, rec := range records {
		categories[i] = domain.Category{
			ID:           rec.ID,
			Name:         rec.Name,
			ProductCount: rec.ProductCount,
		}
	}

	log.Debug("listed categories", slog.Int("category_count", len(categories)))
	return categories, nil
}

func (s *PostgresCatalogStore) logQueryError(log *slog.Logger, op string, err error, attrs ...any) {
	args := append([]any{
		slog.String("operation", op),
		slog.String("error", redact.Error(err)),
		slog.String("error_kind", Classify(err)),
		slog.String("sqlstate", SQLState(err)),
	}, attrs...)
	log.Error("catalog query failed", args...)
}
