package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"comanda/internal/model"
)

// CreateOrder opens a new tab for a table. The order starts as an empty
// draft (draft=true, status=false, no name).
func CreateOrder(ctx context.Context, db *sql.DB, table int) (*model.Order, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO orders (id, "table") VALUES (?, ?)`,
		id, table,
	)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	order, err := GetOrder(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("creating order: inserted order not found")
	}
	return order, nil
}

// GetOrder returns an order by ID, or nil if no such order exists.
func GetOrder(ctx context.Context, db *sql.DB, id string) (*model.Order, error) {
	o := &model.Order{}
	var name sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, "table", status, draft, name, created_At, updated_At
		 FROM orders WHERE id = ?`, id,
	).Scan(&o.ID, &o.Table, &o.Status, &o.Draft, &name, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	if name.Valid {
		o.Name = &name.String
	}
	return o, nil
}

// ListOrders returns order summaries without item expansion. The draft
// filter is tri-state: nil means no restriction.
func ListOrders(ctx context.Context, db *sql.DB, draft *bool) ([]model.Order, error) {
	var rows *sql.Rows
	var err error

	if draft != nil {
		rows, err = db.QueryContext(ctx,
			`SELECT id, "table", status, draft, name, created_At, updated_At
			 FROM orders WHERE draft = ? ORDER BY created_At`, *draft,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT id, "table", status, draft, name, created_At, updated_At
			 FROM orders ORDER BY created_At`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		var name sql.NullString
		if err := rows.Scan(&o.ID, &o.Table, &o.Status, &o.Draft, &name, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		if name.Valid {
			o.Name = &name.String
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// AddItem attaches an amount of a product to an order. Both the order and
// the product must exist; the existence checks and the insert run in one
// transaction so a concurrent delete cannot slip between them.
func AddItem(ctx context.Context, db *sql.DB, orderID, productID string, amount int) (*model.ItemDetail, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE id = ?`, orderID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking order: %w", err)
	}
	if exists == 0 {
		return nil, ErrOrderNotFound
	}

	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE id = ?`, productID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking product: %w", err)
	}
	if exists == 0 {
		return nil, ErrProductNotFound
	}

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO items (id, amount, order_id, product_id) VALUES (?, ?, ?, ?)`,
		id, amount, orderID, productID,
	)
	if err != nil {
		return nil, fmt.Errorf("adding item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing item: %w", err)
	}

	return getItemDetail(ctx, db, id)
}

// getItemDetail returns an item joined with its product projection.
func getItemDetail(ctx context.Context, db *sql.DB, id string) (*model.ItemDetail, error) {
	d := &model.ItemDetail{}
	err := db.QueryRowContext(ctx,
		`SELECT i.id, i.amount, i.order_id, i.product_id, i.created_At,
		        p.id, p.name, p.price, p.banner, p.description
		 FROM items i
		 JOIN products p ON p.id = i.product_id
		 WHERE i.id = ?`, id,
	).Scan(&d.ID, &d.Amount, &d.OrderID, &d.ProductID, &d.CreatedAt,
		&d.Product.ID, &d.Product.Name, &d.Product.Price, &d.Product.Banner, &d.Product.Description)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return d, nil
}

// RemoveItem deletes one line entry and returns its prior data.
func RemoveItem(ctx context.Context, db *sql.DB, itemID string) (*model.Item, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	item := &model.Item{}
	err = tx.QueryRowContext(ctx,
		`SELECT id, amount, order_id, product_id, created_At, updated_At
		 FROM items WHERE id = ?`, itemID,
	).Scan(&item.ID, &item.Amount, &item.OrderID, &item.ProductID, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, itemID); err != nil {
		return nil, fmt.Errorf("removing item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing removal: %w", err)
	}
	return item, nil
}

// DetailOrder returns an order's scalar fields plus its full item list,
// each item joined with its product projection, in insertion order.
func DetailOrder(ctx context.Context, db *sql.DB, orderID string) (*model.OrderDetail, error) {
	order, err := GetOrder(ctx, db, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	rows, err := db.QueryContext(ctx,
		`SELECT i.id, i.amount, i.order_id, i.product_id, i.created_At,
		        p.id, p.name, p.price, p.banner, p.description
		 FROM items i
		 JOIN products p ON p.id = i.product_id
		 WHERE i.order_id = ?
		 ORDER BY i.created_At`, orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing order items: %w", err)
	}
	defer rows.Close()

	detail := &model.OrderDetail{Order: *order, Items: []model.ItemDetail{}}
	for rows.Next() {
		var d model.ItemDetail
		if err := rows.Scan(&d.ID, &d.Amount, &d.OrderID, &d.ProductID, &d.CreatedAt,
			&d.Product.ID, &d.Product.Name, &d.Product.Price, &d.Product.Banner, &d.Product.Description); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}
		detail.Items = append(detail.Items, d)
	}
	return detail, rows.Err()
}

// SendOrder submits a draft tab to the kitchen: draft becomes false and the
// order gets a display name. Items may be attached before or after sending.
func SendOrder(ctx context.Context, db *sql.DB, orderID, name string) (*model.OrderUpdate, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE orders SET draft = 0, name = ?, updated_At = CURRENT_TIMESTAMP WHERE id = ?`,
		name, orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("sending order: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("sending order: %w", err)
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}

	return getOrderUpdate(ctx, db, orderID)
}

// FinishOrder marks an order complete. Finishing a draft that was never sent
// is allowed: staff can close a tab directly.
func FinishOrder(ctx context.Context, db *sql.DB, orderID string) (*model.OrderUpdate, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE orders SET status = 1, updated_At = CURRENT_TIMESTAMP WHERE id = ?`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("finishing order: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("finishing order: %w", err)
	}
	if affected == 0 {
		return nil, ErrOrderNotFound
	}

	return getOrderUpdate(ctx, db, orderID)
}

func getOrderUpdate(ctx context.Context, db *sql.DB, id string) (*model.OrderUpdate, error) {
	u := &model.OrderUpdate{}
	var name sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, "table", name, draft, status, created_At FROM orders WHERE id = ?`, id,
	).Scan(&u.ID, &u.Table, &name, &u.Draft, &u.Status, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}
	if name.Valid {
		u.Name = &name.String
	}
	return u, nil
}

// DeleteOrder removes an order and all of its items in one transaction.
func DeleteOrder(ctx context.Context, db *sql.DB, orderID string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE order_id = ?`, orderID); err != nil {
		return fmt.Errorf("deleting order items: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, orderID)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing order deletion: %w", err)
	}
	return nil
}
