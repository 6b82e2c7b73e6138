package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"comanda/internal/imaging"
	"comanda/internal/model"
	"comanda/internal/store"
)

// ProductsHandler handles catalog endpoints.
type ProductsHandler struct {
	DB *sql.DB
}

// maxBannerUpload limits the multipart form size for product creation.
const maxBannerUpload = 10 << 20

// Create handles POST /product. Expects a multipart form with the fields
// name, price, description, category_id and an image file "file".
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBannerUpload)

	if err := r.ParseMultipartForm(maxBannerUpload); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	name := r.FormValue("name")
	price := r.FormValue("price")
	description := r.FormValue("description")
	categoryID := r.FormValue("category_id")
	if name == "" || price == "" || description == "" || categoryID == "" {
		jsonError(w, http.StatusBadRequest, "name, price, description and category_id required")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "banner file required")
		return
	}
	defer file.Close()

	// Validates by byte sniffing, downscales, and re-encodes as JPEG.
	banner, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := store.CreateProduct(r.Context(), h.DB, name, price, description, categoryID, banner.Data, banner.MIME)
	if errors.Is(err, store.ErrCategoryNotFound) {
		jsonError(w, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		slog.Error("creating product", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	slog.Info("product created", "id", product.ID, "name", product.Name)
	jsonResponse(w, http.StatusCreated, product)
}

// List handles GET /products. The disabled query flag defaults to false,
// so a plain listing shows only the active catalog.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	disabled := r.URL.Query().Get("disabled") == "true"

	products, err := store.ListProducts(r.Context(), h.DB, disabled)
	if err != nil {
		slog.Error("listing products", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, products)
}

// ListByCategory handles GET /category/product.
func (h *ProductsHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("category_id")
	if categoryID == "" {
		jsonError(w, http.StatusBadRequest, "category_id required")
		return
	}

	products, err := store.ListProductsByCategory(r.Context(), h.DB, categoryID)
	if err != nil {
		slog.Error("listing products by category", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, products)
}

// Delete handles DELETE /product. Products are archived, not removed, so
// existing order items keep a valid reference.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("product_id")
	if productID == "" {
		jsonError(w, http.StatusBadRequest, "product_id required")
		return
	}

	err := store.DisableProduct(r.Context(), h.DB, productID)
	if errors.Is(err, store.ErrProductNotFound) {
		jsonError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		slog.Error("disabling product", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	jsonMessage(w, http.StatusOK, "Product archived")
}

// GetBanner handles GET /product/{id}/banner.
func (h *ProductsHandler) GetBanner(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	data, mime, err := store.GetProductBanner(r.Context(), h.DB, id)
	if errors.Is(err, store.ErrProductNotFound) {
		jsonError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		slog.Error("getting product banner", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get banner")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no banner")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
