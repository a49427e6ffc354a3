package store

import (
	"database/sql"
	"errors"

	"github.com/baajeelectronics/baaje-golang/internal/models"
)

// GetAbout returns the current about-us row (the most recently created one,
// should more than one ever exist).
func (s *Store) GetAbout() (*models.AboutUs, error) {
	var a models.AboutUs
	err := s.db.QueryRow(
		"SELECT id, content, image_url, updated_at FROM about_us ORDER BY id DESC LIMIT 1",
	).Scan(&a.ID, &a.Content, &a.ImageURL, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpsertAbout replaces the singleton row in place, creating it if it does
// not exist yet. The check and the write share one transaction.
func (s *Store) UpsertAbout(content string, imageURL *string) error {
	return s.withTx(func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRow("SELECT id FROM about_us LIMIT 1").Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			_, err = tx.Exec(
				"INSERT INTO about_us (content, image_url, updated_at) VALUES (?, ?, ?)",
				content, imageURL, now(),
			)
			return err
		}
		if err != nil {
			return err
		}
		_, err = tx.Exec(
			"UPDATE about_us SET content=?, image_url=?, updated_at=? WHERE id=?",
			content, imageURL, now(), id,
		)
		return err
	})
}
