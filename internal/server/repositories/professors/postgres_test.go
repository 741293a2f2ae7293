package professors

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
	mock.ExpectQuery("INSERT INTO professors").
		WithArgs("Prof X", "Physics", "uni-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("prof-1", now, now))

	p, err := repo.Create(context.Background(), &models.Professor{
		Name: "Prof X", Department: "Physics",
		University: &models.University{ID: "uni-1"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.ID != "prof-1" {
		t.Fatalf("expected returned id, got %q", p.ID)
	}
}

// A concurrent university delete surfaces as a foreign-key violation on the
// insert; callers must see the same not-found error as for the upfront check.
func TestCreate_UniversityDeletedConcurrently(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO professors").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "professors_university_id_fkey"})

	_, err := repo.Create(context.Background(), &models.Professor{
		Name: "Prof X", Department: "Physics",
		University: &models.University{ID: "gone"},
	})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_UniversityDeletedConcurrently(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("UPDATE professors").
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "professors_university_id_fkey"})

	_, err := repo.Update(context.Background(), &models.Professor{
		ID: "prof-1", Name: "Prof X", Department: "Physics",
		University: &models.University{ID: "gone"},
	})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT p.id").
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "nope")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
