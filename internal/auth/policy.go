package auth

import (
	"database/sql"
	"errors"
)

// AdminEmail is the one account treated as privileged. There is no role
// column; this single allow-list entry is the entire admin model.
const AdminEmail = "admin@baajeelectronics.com"

// AdminPolicy decides whether an authenticated user may perform privileged
// operations. Handler call sites only ever see this interface, so replacing
// the fixed-email check with a real role column later touches nothing else.
type AdminPolicy interface {
	IsAdmin(userID int64) (bool, error)
}

// FixedEmailPolicy grants admin to exactly one email address, looked up
// fresh from the users table on every check.
type FixedEmailPolicy struct {
	DB    *sql.DB
	Email string
}

func (p *FixedEmailPolicy) IsAdmin(userID int64) (bool, error) {
	var email string
	err := p.DB.QueryRow("SELECT email FROM users WHERE id = ?", userID).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		// Missing row means not an admin, not a server error.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return email == p.Email, nil
}
