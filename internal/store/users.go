package store

import (
	"database/sql"
	"errors"

	"github.com/baajeelectronics/baaje-golang/internal/models"
)

// CreateUser inserts a new account and returns its id. A taken email
// surfaces as ErrDuplicate (the users.email UNIQUE constraint).
func (s *Store) CreateUser(email string, passwordHash *string, name string) (int64, error) {
	var id int64
	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			"INSERT INTO users (email, password_hash, name, created_at) VALUES (?, ?, ?, ?)",
			email, passwordHash, name, now(),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicate
			}
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(
		"SELECT id, email, password_hash, name, profile_picture, auth_provider, created_at FROM users WHERE email = ?",
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.ProfilePicture, &u.AuthProvider, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByID(id int64) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(
		"SELECT id, email, password_hash, name, profile_picture, auth_provider, created_at FROM users WHERE id = ?",
		id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.ProfilePicture, &u.AuthProvider, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
