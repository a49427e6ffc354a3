package models

type Banner struct {
	ID         int64   `json:"id" db:"id"`
	Title      string  `json:"title" db:"title"`
	ImageURL   string  `json:"image_url" db:"image_url"`
	Link       *string `json:"link" db:"link"`
	IsActive   bool    `json:"is_active" db:"is_active"`
	OrderIndex int     `json:"order_index" db:"order_index"`
	CreatedAt  string  `json:"created_at" db:"created_at"`
}
