package handlers

import (
	"net/http"

	"github.com/crazebite/crazebite-api/internal/api/middleware"
	service "github.com/crazebite/crazebite-api/internal/services"
	"github.com/crazebite/crazebite-api/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories := h.catalogService.ListCategories(r.Context())

		response.Success(w, http.StatusOK, categories)
	}
}

func (h *CatalogHandler) ListItemsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		key := r.PathValue("key")

		// unknown keys filter down to an empty list, not an error
		items := h.catalogService.ListItemsByCategory(r.Context(), key)

		response.Success(w, http.StatusOK, items)
	}
}

func (h *CatalogHandler) SearchItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := r.URL.Query().Get("q")

		items := h.catalogService.SearchItems(r.Context(), query)

		logger := middleware.LoggerFromContext(r.Context())
		logger.Debug("Catalog search", "query", query, "matches", len(items))

		response.Success(w, http.StatusOK, items)
	}
}
