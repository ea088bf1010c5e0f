package domain

// Category is a product category with the number of active products in it.
// ProductCount is derived at query time and never stored.
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProductCount int64  `json:"product_count"`
}
