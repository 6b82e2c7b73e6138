package model

import "time"

// Order is a customer's tab for one physical table.
//
// Lifecycle: created with draft=true and status=false; SendOrder flips draft
// to false and assigns a name; FinishOrder flips status to true. Finished
// orders are terminal, but no state guard rejects further item mutation.
type Order struct {
	ID        string    `json:"id"`
	Table     int       `json:"table"`
	Status    bool      `json:"status"`
	Draft     bool      `json:"draft"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"created_At"`
	UpdatedAt time.Time `json:"updated_At"`
}

// OrderUpdate is the projection returned by the send and finish operations.
type OrderUpdate struct {
	ID        string    `json:"id"`
	Table     int       `json:"table"`
	Name      *string   `json:"name"`
	Draft     bool      `json:"draft"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_At"`
}

// Item is one line entry in an order: a quantity of a particular product.
type Item struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount"`
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id"`
	CreatedAt time.Time `json:"created_At"`
	UpdatedAt time.Time `json:"updated_At"`
}

// ItemDetail is an item joined with its product projection.
type ItemDetail struct {
	ID        string     `json:"id"`
	Amount    int        `json:"amount"`
	OrderID   string     `json:"order_id"`
	ProductID string     `json:"product_id"`
	CreatedAt time.Time  `json:"created_At"`
	Product   ProductRef `json:"product"`
}

// OrderDetail is an order with its full item list.
type OrderDetail struct {
	Order
	Items []ItemDetail `json:"Items"`
}
