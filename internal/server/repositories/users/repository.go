package users

import (
	"context"

	"github.com/unirate/unirate/internal/server/models"
)

// Repository is the credential store. Lookup misses surface as
// common.ErrNotFound; duplicate emails as common.ErrDuplicateEmail. Returned
// users include the password hash — stripping it is the service layer's job.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id string) error

	// CountOthers counts accounts whose email differs from excludeEmail.
	// Used by the seeder to decide whether the database is pristine.
	CountOthers(ctx context.Context, excludeEmail string) (int64, error)
	// DeleteOthers removes every account except the one with keepEmail.
	DeleteOthers(ctx context.Context, keepEmail string) (int64, error)
}
