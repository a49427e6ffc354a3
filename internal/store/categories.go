package store

import (
	"database/sql"

	"github.com/baajeelectronics/baaje-golang/internal/models"
)

func (s *Store) ListCategories() ([]models.Category, error) {
	rows, err := s.db.Query("SELECT id, name, image_url, created_at FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURL, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) CreateCategory(c *models.Category) (int64, error) {
	var id int64
	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"INSERT INTO categories (name, image_url, created_at) VALUES (?, ?, ?)",
			c.Name, c.ImageURL, now(),
		)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

func (s *Store) UpdateCategory(id int64, c *models.Category) error {
	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"UPDATE categories SET name=?, image_url=? WHERE id=?",
			c.Name, c.ImageURL, id,
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

// DeleteCategory removes the row only. Products referencing it keep their
// dangling category_id; there is no cascade and no null-out.
func (s *Store) DeleteCategory(id int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM categories WHERE id = ?", id)
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
