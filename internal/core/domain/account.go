package domain

import (
	"errors"
	"strings"
	"time"
)

// Role determines what an account may do and whether it needs an identifier.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleTeacher       Role = "teacher"
	RoleStudent       Role = "student"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// RequiresIdentifier reports whether accounts with this role must carry a
// login identifier. Students may be enrolled without one.
func (r Role) RequiresIdentifier() bool {
	return r != RoleStudent
}

// OneOf reports whether r is contained in allowed. This is the access guard:
// a pure role-set membership check with no I/O.
func (r Role) OneOf(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// Registration / credential errors, mapped to HTTP statuses by the API layer.
var (
	ErrMissingField       = errors.New("required field missing")
	ErrSecretMismatch     = errors.New("password confirmation does not match")
	ErrSecretTooShort     = errors.New("password must be at least 6 characters")
	ErrIdentifierRequired = errors.New("email is required for this role")
	ErrIdentifierTaken    = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrAccountNotFound    = errors.New("account not found")
	ErrForbidden          = errors.New("access forbidden")
)

// Account is an authenticatable principal record. CredentialDigest is the
// bcrypt output of the account's secret; it must never appear in any external
// representation or log line.
type Account struct {
	ID               string    `json:"id"`
	Surname          string    `json:"surname"`
	GivenName        string    `json:"given_name"`
	Role             Role      `json:"role"`
	Identifier       string    `json:"identifier,omitempty"`
	CredentialDigest string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}

// Principal returns the safe projection of the account handed to callers
// after authentication. The digest is deliberately absent.
func (a *Account) Principal() *Principal {
	return &Principal{
		ID:         a.ID,
		Surname:    a.Surname,
		GivenName:  a.GivenName,
		Identifier: a.Identifier,
		Role:       a.Role,
	}
}

// NormalizeIdentifier trims and lowercases a login identifier so that storage
// and comparison agree. An all-whitespace identifier normalizes to "".
func NormalizeIdentifier(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}
