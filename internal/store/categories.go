package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"comanda/internal/model"
)

// CreateCategory creates a new menu category.
func CreateCategory(ctx context.Context, db *sql.DB, name string) (*model.Category, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO categories (id, name) VALUES (?, ?)`,
		id, name,
	)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	return GetCategory(ctx, db, id)
}

// GetCategory returns a category by ID, or nil if no such category exists.
func GetCategory(ctx context.Context, db *sql.DB, id string) (*model.Category, error) {
	c := &model.Category{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, created_At, updated_At FROM categories WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}
	return c, nil
}

// ListCategories returns all categories in creation order.
func ListCategories(ctx context.Context, db *sql.DB) ([]model.CategoryRef, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name FROM categories ORDER BY created_At`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []model.CategoryRef
	for rows.Next() {
		var c model.CategoryRef
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
