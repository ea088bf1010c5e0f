package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/phonestore-api/internal/api/shared"
	"github.com/phrazzld/phonestore-api/internal/service"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	catalogService service.CatalogService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// ListProducts handles GET /api/products requests
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, products)
}

// GetProduct handles GET /api/products/{id} requests.
// An id that does not coerce to an integer cannot name a product and is
// answered like any other missing product.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, MsgProductNotFound, err, shared.AsMessage())
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, product)
}
