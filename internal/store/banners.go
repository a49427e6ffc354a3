package store

import (
	"database/sql"

	"github.com/baajeelectronics/baaje-golang/internal/models"
)

// ListBanners returns banners by their display order index. With activeOnly
// set, inactive banners are filtered out.
func (s *Store) ListBanners(activeOnly bool) ([]models.Banner, error) {
	query := "SELECT id, title, image_url, link, is_active, order_index, created_at FROM banners"
	if activeOnly {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY order_index"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	banners := []models.Banner{}
	for rows.Next() {
		var b models.Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.ImageURL, &b.Link, &b.IsActive, &b.OrderIndex, &b.CreatedAt); err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

func (s *Store) CreateBanner(b *models.Banner) (int64, error) {
	var id int64
	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"INSERT INTO banners (title, image_url, link, is_active, order_index, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			b.Title, b.ImageURL, b.Link, b.IsActive, b.OrderIndex, now(),
		)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

func (s *Store) UpdateBanner(id int64, b *models.Banner) error {
	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"UPDATE banners SET title=?, image_url=?, link=?, is_active=?, order_index=? WHERE id=?",
			b.Title, b.ImageURL, b.Link, b.IsActive, b.OrderIndex, id,
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

func (s *Store) DeleteBanner(id int64) error {
	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM banners WHERE id = ?", id)
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
