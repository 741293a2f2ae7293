package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/unirate/unirate/internal/common"
	"github.com/unirate/unirate/internal/server/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestCreate_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("a@b.com", "Ann B", "hash", true, "student").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("id-1", now, now))

	u, err := repo.Create(context.Background(), &models.User{
		Email: "a@b.com", FullName: "Ann B", PasswordHash: "hash",
		IsActive: true, Roles: []string{"student"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u.ID != "id-1" {
		t.Fatalf("expected returned id, got %q", u.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := repo.Create(context.Background(), &models.User{
		Email: "a@b.com", FullName: "Ann B", PasswordHash: "hash",
		IsActive: true, Roles: []string{"student"},
	})
	if !errors.Is(err, common.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@example.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByID_ScansRoles(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs("id-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "email", "full_name", "password_hash", "is_active", "roles", "created_at", "updated_at",
		}).AddRow("id-1", "a@b.com", "Ann B", "hash", true, "student,teacher", now, now))

	u, err := repo.GetByID(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if len(u.Roles) != 2 || u.Roles[0] != "student" || u.Roles[1] != "teacher" {
		t.Fatalf("roles not decoded: %v", u.Roles)
	}
	if u.PasswordHash != "hash" {
		t.Fatalf("repository must return the stored hash")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("UPDATE users").WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &models.User{ID: "nope", Roles: []string{"student"}})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM users WHERE id").
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "nope")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSplitRoles(t *testing.T) {
	t.Parallel()

	if got := splitRoles(""); got != nil {
		t.Fatalf("expected nil for empty string, got %v", got)
	}
	if got := splitRoles("admin"); len(got) != 1 || got[0] != "admin" {
		t.Fatalf("unexpected roles: %v", got)
	}
	if got := joinRoles([]string{"a", "b"}); got != "a,b" {
		t.Fatalf("unexpected join: %q", got)
	}
}
