package comments

import (
	"context"

	"github.com/unirate/unirate/internal/server/models"
)

// Filter narrows and pages List results. Zero values mean "no restriction";
// Page and Limit are normalized by the service before reaching the repo.
type Filter struct {
	ProfessorID string
	UserID      string
	// Search matches comment content, case-insensitively.
	Search string
	Page   int
	Limit  int
}

// Rating is the aggregate over a professor's comments.
type Rating struct {
	AverageRating float64 `json:"averageRating"`
	TotalComments int64   `json:"totalComments"`
}

type Repository interface {
	// Create fails with common.ErrDuplicateComment when the (professor, user)
	// pair already has a comment; the unique index arbitrates races.
	Create(ctx context.Context, c *models.Comment) (*models.Comment, error)
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	List(ctx context.Context, filter Filter) ([]*models.Comment, int64, error)
	Update(ctx context.Context, c *models.Comment) (*models.Comment, error)
	Delete(ctx context.Context, id string) error
	ProfessorRating(ctx context.Context, professorID string) (*Rating, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
