package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/phonestore-api/internal/api"
	apiMiddleware "github.com/phrazzld/phonestore-api/internal/api/middleware"
	"github.com/phrazzld/phonestore-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{shared.TraceIDHeader, middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	productHandler := api.NewProductHandler(app.catalogService)
	categoryHandler := api.NewCategoryHandler(app.catalogService)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{id}", productHandler.GetProduct)
		r.Get("/categories", categoryHandler.ListCategories)
	})

	r.Handle(api.ImagesPathPrefix+"/*", api.NewImageHandler(app.config.Static.ImagesDir))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
