package models

// Product is the catalog entity. Specs is structured in memory
// (string key -> string value); the store serializes it to TEXT.
// CategoryID is a weak reference: deleting a category leaves it dangling.
type Product struct {
	ID          int64             `json:"id" db:"id"`
	Name        string            `json:"name" db:"name"`
	Description *string           `json:"description" db:"description"`
	Price       float64           `json:"price" db:"price"`
	CategoryID  *int64            `json:"category_id" db:"category_id"`
	ImageURL    *string           `json:"image_url" db:"image_url"`
	Specs       map[string]string `json:"specs,omitempty" db:"specs"`
	Stock       int               `json:"stock" db:"stock"`
	IsFeatured  bool              `json:"is_featured" db:"is_featured"`
	CreatedAt   string            `json:"created_at" db:"created_at"`
}
