package model

import "time"

// Product is a menu catalog entry. Price is kept as a string to round-trip
// the upstream storage format unchanged. Banner is the serving path of the
// product image, not the image itself.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Price       string      `json:"price"`
	Description string      `json:"description"`
	Banner      string      `json:"banner"`
	Disabled    bool        `json:"disabled"`
	CategoryID  string      `json:"category_id"`
	CreatedAt   time.Time   `json:"created_At"`
	UpdatedAt   time.Time   `json:"updated_At"`
	Category    CategoryRef `json:"category"`
}

// ProductRef is the product projection embedded in order items.
type ProductRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Banner      string `json:"banner"`
	Description string `json:"description"`
}
