package models

type Category struct {
	ID        int64   `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	ImageURL  *string `json:"image_url" db:"image_url"`
	CreatedAt string  `json:"created_at" db:"created_at"`
}
