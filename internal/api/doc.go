// Package api handles incoming HTTP requests for the storefront: the product
// and category listings, the single-product lookup and the static product
// images. It acts as an adapter between HTTP clients and the catalog service,
// translating service errors into status codes and safe response bodies.
package api
