// Package service contains the application use cases of the storefront API.
// It sits between the HTTP handlers and the catalog query gateway defined in
// internal/store: it runs the queries, reshapes flat join rows into nested
// products with the domain aggregator, and translates store failures into
// the two error kinds the API layer understands.
//
// The service layer depends on domain types and store interfaces only, never
// on a concrete database implementation.
package service
