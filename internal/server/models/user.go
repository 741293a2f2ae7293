package models

import (
	"strings"
	"time"
)

// User is a registered account. PasswordHash never leaves the process: it is
// excluded from JSON and cleared by Sanitized before a user crosses the
// service boundary.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NormalizeEmail lowercases and trims an address. Idempotent.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Normalize applies the stored-form invariants to the user in place. Runs on
// every create and update, so emails are always stored normalized.
func (u *User) Normalize() {
	u.Email = NormalizeEmail(u.Email)
	u.FullName = strings.TrimSpace(u.FullName)
}

// Sanitized returns a copy of the user with the password hash removed.
func (u *User) Sanitized() *User {
	c := *u
	c.PasswordHash = ""
	c.Roles = append([]string(nil), u.Roles...)
	return &c
}

// HasAnyRole reports whether the user holds at least one of the given roles.
// An empty argument list matches nothing.
func (u *User) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
