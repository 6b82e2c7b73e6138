package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Column names follow the upstream
// storage contract (created_At/updated_At, quoted "table" on orders).
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'staff' CHECK (role IN ('admin', 'staff')),
    created_At    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_At    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS categories (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    created_At DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_At DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS products (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    price       TEXT NOT NULL,
    description TEXT NOT NULL,
    banner      TEXT NOT NULL DEFAULT '',
    banner_image BLOB,
    banner_mime  TEXT,
    disabled    INTEGER NOT NULL DEFAULT 0,
    category_id TEXT NOT NULL REFERENCES categories(id),
    created_At  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_At  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS orders (
    id         TEXT PRIMARY KEY,
    "table"    INTEGER NOT NULL CHECK ("table" > 0),
    status     INTEGER NOT NULL DEFAULT 0,
    draft      INTEGER NOT NULL DEFAULT 1,
    name       TEXT,
    created_At DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_At DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS items (
    id         TEXT PRIMARY KEY,
    amount     INTEGER NOT NULL CHECK (amount > 0),
    order_id   TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
    product_id TEXT NOT NULL REFERENCES products(id),
    created_At DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_At DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_items_order ON items(order_id);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
