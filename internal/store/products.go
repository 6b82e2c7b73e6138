package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"comanda/internal/model"
)

// CreateProduct creates a catalog entry with its banner image. The category
// must exist. The banner column stores the serving path for the image, which
// itself lives in banner_image/banner_mime.
func CreateProduct(ctx context.Context, db *sql.DB, name, price, description, categoryID string, image []byte, mime string) (*model.Product, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM categories WHERE id = ?`, categoryID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("checking category: %w", err)
	}
	if exists == 0 {
		return nil, ErrCategoryNotFound
	}

	id := uuid.NewString()
	banner := "/product/" + id + "/banner"
	_, err = tx.ExecContext(ctx,
		`INSERT INTO products (id, name, price, description, banner, banner_image, banner_mime, category_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, name, price, description, banner, image, mime, categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing product: %w", err)
	}

	return GetProduct(ctx, db, id)
}

// GetProduct returns a product joined with its category, or nil if no such
// product exists.
func GetProduct(ctx context.Context, db *sql.DB, id string) (*model.Product, error) {
	p := &model.Product{}
	err := db.QueryRowContext(ctx,
		`SELECT p.id, p.name, p.price, p.description, p.banner, p.disabled, p.category_id,
		        p.created_At, p.updated_At, c.id, c.name
		 FROM products p
		 JOIN categories c ON c.id = p.category_id
		 WHERE p.id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Banner, &p.Disabled, &p.CategoryID,
		&p.CreatedAt, &p.UpdatedAt, &p.Category.ID, &p.Category.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return p, nil
}

// ListProducts returns products matching the disabled flag, newest first.
func ListProducts(ctx context.Context, db *sql.DB, disabled bool) ([]model.Product, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT p.id, p.name, p.price, p.description, p.banner, p.disabled, p.category_id,
		        p.created_At, p.updated_At, c.id, c.name
		 FROM products p
		 JOIN categories c ON c.id = p.category_id
		 WHERE p.disabled = ?
		 ORDER BY p.created_At DESC`, disabled,
	)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// ListProductsByCategory returns the enabled products of one category.
func ListProductsByCategory(ctx context.Context, db *sql.DB, categoryID string) ([]model.Product, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT p.id, p.name, p.price, p.description, p.banner, p.disabled, p.category_id,
		        p.created_At, p.updated_At, c.id, c.name
		 FROM products p
		 JOIN categories c ON c.id = p.category_id
		 WHERE p.category_id = ? AND p.disabled = 0
		 ORDER BY p.created_At DESC`, categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing products by category: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Banner, &p.Disabled, &p.CategoryID,
			&p.CreatedAt, &p.UpdatedAt, &p.Category.ID, &p.Category.Name); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// DisableProduct soft-deletes a product by setting its disabled flag.
// Order items keep referencing it.
func DisableProduct(ctx context.Context, db *sql.DB, id string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE products SET disabled = 1, updated_At = CURRENT_TIMESTAMP WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("disabling product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("disabling product: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// GetProductBanner returns a product's banner image data and MIME type.
func GetProductBanner(ctx context.Context, db *sql.DB, id string) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT banner_image, banner_mime FROM products WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", ErrProductNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting product banner: %w", err)
	}
	return image, mime.String, nil
}
