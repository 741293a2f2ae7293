package repomanager

import (
	"context"
	"database/sql"

	"github.com/unirate/unirate/internal/dbx"
	"github.com/unirate/unirate/internal/server/repositories/comments"
	"github.com/unirate/unirate/internal/server/repositories/professors"
	"github.com/unirate/unirate/internal/server/repositories/universities"
	"github.com/unirate/unirate/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same
// constructor works on a plain connection and inside a transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Universities(db dbx.DBTX) universities.Repository
	Professors(db dbx.DBTX) professors.Repository
	Comments(db dbx.DBTX) comments.Repository
}
