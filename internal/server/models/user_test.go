package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	got := NormalizeEmail(" Test@Example.COM ")
	if got != "test@example.com" {
		t.Fatalf("normalize mismatch: got %q", got)
	}
	// idempotence
	if NormalizeEmail(got) != got {
		t.Fatalf("normalization must be idempotent")
	}
}

func TestUser_Normalize(t *testing.T) {
	t.Parallel()

	u := &User{Email: "  New@Example.Com ", FullName: "  New User  "}
	u.Normalize()
	if u.Email != "new@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.FullName != "New User" {
		t.Fatalf("full name not trimmed: %q", u.FullName)
	}
}

func TestUser_SanitizedStripsHash(t *testing.T) {
	t.Parallel()

	u := &User{ID: "1", Email: "a@b.com", PasswordHash: "$2a$10$hash", Roles: []string{"student"}}
	s := u.Sanitized()
	if s.PasswordHash != "" {
		t.Fatalf("sanitized user still carries a hash")
	}
	if u.PasswordHash == "" {
		t.Fatalf("original user must be untouched")
	}
	s.Roles[0] = "admin"
	if u.Roles[0] != "student" {
		t.Fatalf("sanitized copy must not share the roles slice")
	}
}

func TestUser_JSONNeverContainsHash(t *testing.T) {
	t.Parallel()

	u := &User{ID: "1", Email: "a@b.com", PasswordHash: "$2a$10$secret"}
	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Contains(string(b), "secret") || strings.Contains(string(b), "password") {
		t.Fatalf("serialized user leaks hash: %s", b)
	}
}

func TestUser_HasAnyRole(t *testing.T) {
	t.Parallel()

	u := &User{Roles: []string{"student"}}
	if !u.HasAnyRole("student", "admin") {
		t.Fatalf("expected intersection to match")
	}
	if u.HasAnyRole("admin") {
		t.Fatalf("expected no match for admin")
	}
	if u.HasAnyRole() {
		t.Fatalf("empty wanted set must match nothing")
	}
}
