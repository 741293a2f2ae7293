package universities

import (
	"context"

	"github.com/unirate/unirate/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.University) (*models.University, error)
	GetByID(ctx context.Context, id string) (*models.University, error)
	List(ctx context.Context) ([]*models.University, error)
	Update(ctx context.Context, u *models.University) (*models.University, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
