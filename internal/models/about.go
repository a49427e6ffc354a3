package models

// AboutUs is a singleton by handler convention: at most one row exists,
// and updates replace it in place.
type AboutUs struct {
	ID        int64   `json:"id" db:"id"`
	Content   string  `json:"content" db:"content"`
	ImageURL  *string `json:"image_url" db:"image_url"`
	UpdatedAt string  `json:"updated_at" db:"updated_at"`
}
