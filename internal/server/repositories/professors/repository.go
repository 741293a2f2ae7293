package professors

import (
	"context"

	"github.com/unirate/unirate/internal/server/models"
)

// Filter narrows List results. Zero values mean "no restriction".
type Filter struct {
	UniversityID string
	// Search matches name or department, case-insensitively.
	Search string
}

type Repository interface {
	Create(ctx context.Context, p *models.Professor) (*models.Professor, error)
	GetByID(ctx context.Context, id string) (*models.Professor, error)
	List(ctx context.Context, filter Filter) ([]*models.Professor, error)
	Update(ctx context.Context, p *models.Professor) (*models.Professor, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
