package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"comanda/internal/model"
	"comanda/internal/store"
)

// OrdersHandler handles the order lifecycle endpoints.
type OrdersHandler struct {
	DB *sql.DB
}

type createOrderRequest struct {
	Table int `json:"table"`
}

type addItemRequest struct {
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Amount    int    `json:"amount"`
}

type sendOrderRequest struct {
	OrderID string `json:"order_id"`
	Name    string `json:"name"`
}

type finishOrderRequest struct {
	OrderID string `json:"order_id"`
}

// Create handles POST /order.
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Table < 1 {
		jsonError(w, http.StatusBadRequest, "table must be a positive number")
		return
	}

	order, err := store.CreateOrder(r.Context(), h.DB, req.Table)
	if err != nil {
		slog.Error("creating order", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	slog.Info("order opened", "id", order.ID, "table", order.Table)
	jsonResponse(w, http.StatusOK, order)
}

// List handles GET /orders. The draft query flag is tri-state: absent means
// no restriction, "true"/"false" restrict to matching orders.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	var draft *bool
	switch r.URL.Query().Get("draft") {
	case "":
	case "true":
		v := true
		draft = &v
	case "false":
		v := false
		draft = &v
	default:
		jsonError(w, http.StatusBadRequest, "draft must be 'true' or 'false'")
		return
	}

	orders, err := store.ListOrders(r.Context(), h.DB, draft)
	if err != nil {
		slog.Error("listing orders", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	jsonResponse(w, http.StatusOK, orders)
}

// Delete handles DELETE /order. Removes the order together with its items.
func (h *OrdersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order_id")
	if orderID == "" {
		jsonError(w, http.StatusBadRequest, "order_id required")
		return
	}

	err := store.DeleteOrder(r.Context(), h.DB, orderID)
	if errors.Is(err, store.ErrOrderNotFound) {
		jsonError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		slog.Error("deleting order", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete order")
		return
	}

	slog.Info("order deleted", "id", orderID)
	jsonMessage(w, http.StatusOK, "Order deleted")
}

// AddItem handles POST /order/add.
func (h *OrdersHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.OrderID == "" || req.ProductID == "" {
		jsonError(w, http.StatusBadRequest, "order_id and product_id required")
		return
	}
	if req.Amount < 1 {
		jsonError(w, http.StatusBadRequest, "amount must be a positive number")
		return
	}

	item, err := store.AddItem(r.Context(), h.DB, req.OrderID, req.ProductID, req.Amount)
	if errors.Is(err, store.ErrOrderNotFound) {
		jsonError(w, http.StatusNotFound, "Order not found")
		return
	}
	if errors.Is(err, store.ErrProductNotFound) {
		jsonError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		slog.Error("adding item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to add item")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// RemoveItem handles DELETE /order/item/remove. The removed item's prior
// data is included alongside the confirmation message.
func (h *OrdersHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.URL.Query().Get("item_id")
	if itemID == "" {
		jsonError(w, http.StatusBadRequest, "item_id required")
		return
	}

	item, err := store.RemoveItem(r.Context(), h.DB, itemID)
	if errors.Is(err, store.ErrItemNotFound) {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("removing item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to remove item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Item removed",
		"item":    item,
	})
}

// Detail handles GET /order/detail.
func (h *OrdersHandler) Detail(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order_id")
	if orderID == "" {
		jsonError(w, http.StatusBadRequest, "order_id required")
		return
	}

	detail, err := store.DetailOrder(r.Context(), h.DB, orderID)
	if errors.Is(err, store.ErrOrderNotFound) {
		jsonError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		slog.Error("getting order detail", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get order")
		return
	}

	jsonResponse(w, http.StatusOK, detail)
}

// Send handles PUT /order/send.
func (h *OrdersHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.OrderID == "" {
		jsonError(w, http.StatusBadRequest, "order_id required")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	order, err := store.SendOrder(r.Context(), h.DB, req.OrderID, req.Name)
	if errors.Is(err, store.ErrOrderNotFound) {
		jsonError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		slog.Error("sending order", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to send order")
		return
	}

	slog.Info("order sent to kitchen", "id", order.ID, "name", req.Name)
	jsonResponse(w, http.StatusOK, order)
}

// Finish handles PUT /order/finish.
func (h *OrdersHandler) Finish(w http.ResponseWriter, r *http.Request) {
	var req finishOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.OrderID == "" {
		jsonError(w, http.StatusBadRequest, "order_id required")
		return
	}

	order, err := store.FinishOrder(r.Context(), h.DB, req.OrderID)
	if errors.Is(err, store.ErrOrderNotFound) {
		jsonError(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		slog.Error("finishing order", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to finish order")
		return
	}

	slog.Info("order finished", "id", order.ID)
	jsonResponse(w, http.StatusOK, order)
}
