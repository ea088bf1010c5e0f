package api

import (
	"net/http"

	"github.com/phrazzld/phonestore-api/internal/api/shared"
	"github.com/phrazzld/phonestore-api/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	catalogService service.CatalogService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(catalogService service.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalogService: catalogService}
}

// ListCategories handles GET /api/categories requests
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categories)
}
