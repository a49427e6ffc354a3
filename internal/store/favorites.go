package store

import (
	"database/sql"

	"github.com/baajeelectronics/baaje-golang/internal/models"
)

// AddFavorite inserts the (user, product) pair. The duplicate case is not
// pre-checked: the UNIQUE constraint rejects it and we translate the
// violation to ErrDuplicate.
func (s *Store) AddFavorite(userID, productID int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO favorites (user_id, product_id, created_at) VALUES (?, ?, ?)",
			userID, productID, now(),
		)
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	})
}

func (s *Store) RemoveFavorite(userID, productID int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"DELETE FROM favorites WHERE user_id = ? AND product_id = ?",
			userID, productID,
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

// ListFavoriteProducts returns the favorited products themselves, most
// recently favorited first.
func (s *Store) ListFavoriteProducts(userID int64) ([]models.Product, error) {
	rows, err := s.db.Query(
		`SELECT p.id, p.name, p.description, p.price, p.category_id, p.image_url, p.specs, p.stock, p.is_featured, p.created_at
		 FROM products p
		 JOIN favorites f ON p.id = f.product_id
		 WHERE f.user_id = ?
		 ORDER BY f.created_at DESC, f.id DESC`,
		userID,
	)
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
