package domain

// AggregateProducts collapses flat join rows into one Product per distinct ID.
//
// Products appear in order of first appearance in rows. Each product's Images
// holds every non-nil ImageName of the rows sharing its ID, in row order;
// duplicates are kept. Scalar fields are taken from the first row seen for
// the ID. The result is never nil.
func AggregateProducts(rows []ProductRow) []Product {
	products := make([]Product, 0, len(rows))
	index := make(map[int64]int, len(rows))

	for _, row := range rows {
		i, seen := index[row.ID]
		if !seen {
			i = len(products)
			index[row.ID] = i
			products = append(products, newProduct(row))
		}
		if row.ImageName != nil {
			products[i].Images = append(products[i].Images, *row.ImageName)
		}
	}

	return products
}

// AggregateProduct builds a single Product from rows that all belong to the
// same product. It reports false when rows is empty. Rows carrying a
// different ID than the first one are ignored.
func AggregateProduct(rows []ProductRow) (Product, bool) {
	if len(rows) == 0 {
		return Product{}, false
	}

	product := newProduct(rows[0])
	for _, row := range rows {
		if row.ID != product.ID {
			continue
		}
		if row.ImageName != nil {
			product.Images = append(product.Images, *row.ImageName)
		}
	}
	return product, true
}
