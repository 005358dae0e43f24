package model

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// User is a read-only record from the users file, loaded once at boot.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Roles understood by the authorization chain.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// CheckPassword verifies a candidate password. Stored passwords are bcrypt
// hashes; legacy records may still hold plaintext, which is compared in
// constant time. Plaintext support is tracked as security debt.
func (u *User) CheckPassword(password string) bool {
	if strings.HasPrefix(u.Password, "$2a$") ||
		strings.HasPrefix(u.Password, "$2b$") ||
		strings.HasPrefix(u.Password, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1
}
