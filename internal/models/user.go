package models

// User Model with Pointers for Nullable Fields.
// PasswordHash is nullable because social-auth accounts never set one.
type User struct {
	ID             int64   `json:"id" db:"id"`
	Email          string  `json:"email" db:"email"`
	PasswordHash   *string `json:"-" db:"password_hash"`
	Name           string  `json:"name" db:"name"`
	ProfilePicture *string `json:"profile_picture" db:"profile_picture"`
	AuthProvider   string  `json:"auth_provider" db:"auth_provider"`
	CreatedAt      string  `json:"created_at" db:"created_at"`
}
