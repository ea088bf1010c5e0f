package domain

import "github.com/shopspring/decimal"

// ProductStatusActive is the only product status visible to reads.
const ProductStatusActive = "active"

// Product is an active catalog product together with its image identifiers.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       Price           `json:"price"`
	Stock       int64           `json:"stock"`
	Description *string         `json:"description"`
	CategoryID  *int64          `json:"category_id"`
	// Images is never nil so that a product without images encodes as [].
	Images []string `json:"images"`
}

// ProductRow is one row of the products/product_images outer join: the
// product's scalar fields plus at most one image identifier.
type ProductRow struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Stock       int64
	Description *string
	CategoryID  *int64
	// ImageName is nil when the product has no matching image row.
	ImageName *string
}

// newProduct copies the scalar fields of r into a Product with an empty image list.
func newProduct(r ProductRow) Product {
	return Product{
		ID:          r.ID,
		Name:        r.Name,
		Price:       NewPrice(r.Price),
		Stock:       r.Stock,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Images:      []string{},
	}
}
