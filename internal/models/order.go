package models

// OrderItem is one line of an order. Lines are captured as submitted at
// checkout; nothing re-validates them against the catalog afterwards.
type OrderItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order keeps its own copy of the customer details so the record stays
// complete even if the user account changes or never existed (guest checkout).
// Items is structured in memory; the store serializes it to TEXT.
type Order struct {
	ID               int64       `json:"id" db:"id"`
	UserID           *int64      `json:"user_id" db:"user_id"`
	CustomerName     string      `json:"customer_name" db:"customer_name"`
	CustomerEmail    string      `json:"customer_email" db:"customer_email"`
	CustomerPhone    string      `json:"customer_phone" db:"customer_phone"`
	CustomerLocation string      `json:"customer_location" db:"customer_location"`
	Items            []OrderItem `json:"items" db:"items"`
	TotalAmount      float64     `json:"total_amount" db:"total_amount"`
	Status           string      `json:"status" db:"status"`
	CreatedAt        string      `json:"created_at" db:"created_at"`
}
