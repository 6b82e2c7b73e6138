package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"comanda/internal/db"
)

// seedProduct creates a category and a product to attach order items to.
func seedProduct(t *testing.T, database *sql.DB) string {
	t.Helper()
	ctx := context.Background()

	category, err := CreateCategory(ctx, database, "Pizzas")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	product, err := CreateProduct(ctx, database, "Margherita", "12.50", "Tomato and mozzarella", category.ID, []byte("img"), "image/jpeg")
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	return product.ID
}

func TestCreateOrderDefaults(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	order, err := CreateOrder(ctx, database, 5)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.Table != 5 {
		t.Errorf("expected table 5, got %d", order.Table)
	}
	if !order.Draft {
		t.Error("expected new order to be a draft")
	}
	if order.Status {
		t.Error("expected new order to not be finished")
	}
	if order.Name != nil {
		t.Errorf("expected no name, got %q", *order.Name)
	}

	detail, err := DetailOrder(ctx, database, order.ID)
	if err != nil {
		t.Fatalf("DetailOrder: %v", err)
	}
	if len(detail.Items) != 0 {
		t.Errorf("expected new order to have no items, got %d", len(detail.Items))
	}
}

func TestAddItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	productID := seedProduct(t, database)
	order, _ := CreateOrder(ctx, database, 3)

	item, err := AddItem(ctx, database, order.ID, productID, 2)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.Amount != 2 {
		t.Errorf("expected amount 2, got %d", item.Amount)
	}
	if item.OrderID != order.ID {
		t.Errorf("expected order_id %q, got %q", order.ID, item.OrderID)
	}
	if item.Product.ID != productID {
		t.Errorf("expected product id %q, got %q", productID, item.Product.ID)
	}
	if item.Product.Name != "Margherita" || item.Product.Price != "12.50" {
		t.Errorf("unexpected product projection: %+v", item.Product)
	}
	if item.Product.Banner == "" {
		t.Error("expected product banner path in projection")
	}
}

func TestAddItemMissingOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	productID := seedProduct(t, database)

	_, err := AddItem(ctx, database, "no-such-order", productID, 1)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestAddItemMissingProduct(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	order, _ := CreateOrder(ctx, database, 1)

	_, err := AddItem(ctx, database, order.ID, "no-such-product", 1)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestRemoveItemRoundTrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	productID := seedProduct(t, database)
	order, _ := CreateOrder(ctx, database, 4)

	item, err := AddItem(ctx, database, order.ID, productID, 3)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	removed, err := RemoveItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if removed.ID != item.ID || removed.Amount != 3 {
		t.Errorf("expected removed item to carry prior data, got %+v", removed)
	}

	// The order's item list is back to what it was before the add.
	detail, err := DetailOrder(ctx, database, order.ID)
	if err != nil {
		t.Fatalf("DetailOrder: %v", err)
	}
	if len(detail.Items) != 0 {
		t.Errorf("expected 0 items after remove, got %d", len(detail.Items))
	}
}

func TestRemoveItemMissing(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := RemoveItem(ctx, database, "no-such-item")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDetailOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	productID := seedProduct(t, database)
	order, _ := CreateOrder(ctx, database, 7)
	AddItem(ctx, database, order.ID, productID, 1)
	AddItem(ctx, database, order.ID, productID, 2)

	detail, err := DetailOrder(ctx, database, order.ID)
	if err != nil {
		t.Fatalf("DetailOrder: %v", err)
	}
	if detail.ID != order.ID || detail.Table != 7 {
		t.Errorf("unexpected order scalars: %+v", detail.Order)
	}
	if len(detail.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(detail.Items))
	}
	for _, item := range detail.Items {
		if item.Product.ID != productID {
			t.Errorf("expected joined product %q, got %q", productID, item.Product.ID)
		}
	}
}

func TestDetailOrderMissing(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := DetailOrder(ctx, database, "no-such-order")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestSendOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	order, _ := CreateOrder(ctx, database, 2)

	updated, err := SendOrder(ctx, database, order.ID, "Alice")
	if err != nil {
		t.Fatalf("SendOrder: %v", err)
	}
	if updated.Draft {
		t.Error("expected draft=false after send")
	}
	if updated.Name == nil || *updated.Name != "Alice" {
		t.Errorf("expected name 'Alice', got %v", updated.Name)
	}
	if updated.Status {
		t.Error("expected status unchanged after send")
	}
}

func TestSendOrderMissing(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := SendOrder(ctx, database, "no-such-order", "Bob")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestFinishOrderAfterSend(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	order, _ := CreateOrder(ctx, database, 2)
	SendOrder(ctx, database, order.ID, "Bob")

	updated, err := FinishOrder(ctx, database, order.ID)
	if err != nil {
		t.Fatalf("FinishOrder: %v", err)
	}
	if !updated.Status {
		t.Error("expected status=true after finish")
	}
	if updated.Draft {
		t.Error("expected draft=false after send+finish")
	}
}

func TestFinishOrderWhileDraft(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// A draft that was never sent can be finished directly.
	order, _ := CreateOrder(ctx, database, 9)

	updated, err := FinishOrder(ctx, database, order.ID)
	if err != nil {
		t.Fatalf("FinishOrder: %v", err)
	}
	if !updated.Status {
		t.Error("expected status=true after finish")
	}
	if !updated.Draft {
		t.Error("expected draft untouched by finish")
	}
}

func TestListOrdersFilter(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	o1, _ := CreateOrder(ctx, database, 1)
	CreateOrder(ctx, database, 2)
	SendOrder(ctx, database, o1.ID, "Alice")

	all, err := ListOrders(ctx, database, nil)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 orders without filter, got %d", len(all))
	}

	draft := true
	drafts, _ := ListOrders(ctx, database, &draft)
	if len(drafts) != 1 {
		t.Errorf("expected 1 draft order, got %d", len(drafts))
	}

	draft = false
	sent, _ := ListOrders(ctx, database, &draft)
	if len(sent) != 1 {
		t.Errorf("expected 1 sent order, got %d", len(sent))
	}
	if sent[0].ID != o1.ID {
		t.Errorf("expected sent order %q, got %q", o1.ID, sent[0].ID)
	}
}

func TestDeleteOrderCascades(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	productID := seedProduct(t, database)
	order, _ := CreateOrder(ctx, database, 6)
	AddItem(ctx, database, order.ID, productID, 1)
	AddItem(ctx, database, order.ID, productID, 2)

	if err := DeleteOrder(ctx, database, order.ID); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}

	_, err := DetailOrder(ctx, database, order.ID)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound after delete, got %v", err)
	}

	var count int
	database.QueryRowContext(ctx, `SELECT COUNT(*) FROM items WHERE order_id = ?`, order.ID).Scan(&count)
	if count != 0 {
		t.Errorf("expected 0 items after order delete, got %d", count)
	}
}

func TestDeleteOrderMissing(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	err := DeleteOrder(ctx, database, "no-such-order")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}
