// Package domain contains the catalog entities exposed by the storefront API
// and the aggregation that turns flat product/image join rows into nested
// products. It has no knowledge of HTTP or of the database driver.
package domain
