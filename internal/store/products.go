package store

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/baajeelectronics/baaje-golang/internal/models"
)

// ProductFilter holds the optional equality predicates for listing.
// Nil means "no filter on this field".
type ProductFilter struct {
	CategoryID *int64
	Featured   *bool
}

const productColumns = "id, name, description, price, category_id, image_url, specs, stock, is_featured, created_at"

// scanProduct reads one row and parses the specs TEXT back into a map.
func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	var specs *string
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID,
		&p.ImageURL, &specs, &p.Stock, &p.IsFeatured, &p.CreatedAt)
	if err != nil {
		return p, err
	}
	if specs != nil && *specs != "" {
		if err := json.Unmarshal([]byte(*specs), &p.Specs); err != nil {
			return p, err
		}
	}
	return p, nil
}

// marshalSpecs serializes the specs map for storage; empty maps store as NULL.
func marshalSpecs(specs map[string]string) (*string, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(specs)
	if err != nil {
		return nil, err
	}
	text := string(raw)
	return &text, nil
}

// ListProducts returns the full matching set, newest first. No pagination.
func (s *Store) ListProducts(filter ProductFilter) ([]models.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE 1=1"
	args := []any{}

	if filter.CategoryID != nil {
		query += " AND category_id = ?"
		args = append(args, *filter.CategoryID)
	}
	if filter.Featured != nil {
		query += " AND is_featured = ?"
		args = append(args, *filter.Featured)
	}

	// Seed rows share a timestamp, so the id breaks ties in creation order.
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *Store) GetProduct(id int64) (*models.Product, error) {
	row := s.db.QueryRow("SELECT "+productColumns+" FROM products WHERE id = ?", id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateProduct(p *models.Product) (int64, error) {
	specs, err := marshalSpecs(p.Specs)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO products (name, description, price, category_id, image_url, specs, stock, is_featured, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Name, p.Description, p.Price, p.CategoryID, p.ImageURL, specs, p.Stock, p.IsFeatured, now(),
		)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

// UpdateProduct replaces every mutable field. Existence is checked by the
// rows-affected count after the write, not up front.
func (s *Store) UpdateProduct(id int64, p *models.Product) error {
	specs, err := marshalSpecs(p.Specs)
	if err != nil {
		return err
	}

	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`UPDATE products SET name=?, description=?, price=?, category_id=?, image_url=?, specs=?, stock=?, is_featured=?
			 WHERE id=?`,
			p.Name, p.Description, p.Price, p.CategoryID, p.ImageURL, specs, p.Stock, p.IsFeatured, id,
		)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *Store) DeleteProduct(id int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM products WHERE id = ?", id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}
