package auth

import "golang.org/x/crypto/bcrypt"

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

// Set hashes the plaintext with a fresh salt. The salt lives inside the
// bcrypt hash string, so nothing needs to be stored separately.
func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

// Matches reports whether the plaintext matches the stored hash. A malformed
// hash reads as a failed match rather than an error.
func (p *Password) Matches(plaintextPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword)) == nil
}
