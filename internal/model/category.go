package model

import "time"

// Category groups products on the menu.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_At"`
	UpdatedAt time.Time `json:"updated_At"`
}

// CategoryRef is the category projection embedded in product listings.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
