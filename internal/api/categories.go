package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"comanda/internal/model"
	"comanda/internal/store"
)

// CategoriesHandler handles menu category endpoints.
type CategoriesHandler struct {
	DB *sql.DB
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// Create handles POST /category.
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	category, err := store.CreateCategory(r.Context(), h.DB, req.Name)
	if err != nil {
		slog.Error("creating category", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	jsonResponse(w, http.StatusCreated, category)
}

// List handles GET /category.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := store.ListCategories(r.Context(), h.DB)
	if err != nil {
		slog.Error("listing categories", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	if categories == nil {
		categories = []model.CategoryRef{}
	}
	jsonResponse(w, http.StatusOK, categories)
}
