package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/unirate/unirate/internal/common"
	"github.com/unirate/unirate/internal/logging"
	"github.com/unirate/unirate/internal/server/auth"
	"github.com/unirate/unirate/internal/server/models"
	"github.com/unirate/unirate/internal/server/repositories/comments"
	"github.com/unirate/unirate/internal/server/repositories/repomanager"
)

const (
	defaultCommentPage  = 1
	defaultCommentLimit = 20
)

type CreateCommentInput struct {
	Content     string
	Rating      int
	ProfessorID string
}

type UpdateCommentInput struct {
	Content *string
	Rating  *int
}

type CommentFilter struct {
	ProfessorID string
	UserID      string
	Search      string
	Page        int
	Limit       int
}

// CommentPage is a page of comments plus the paging envelope.
type CommentPage struct {
	Data  []*models.Comment `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// CommentsService manages ratings. Each user may rate a professor once;
// updates and deletions are restricted to the comment owner or an
// administrator.
type CommentsService struct {
	db         *sql.DB
	repos      repomanager.RepositoryManager
	professors *ProfessorsService
	logger     logging.Logger
}

func NewCommentsService(db *sql.DB, m repomanager.RepositoryManager, professors *ProfessorsService, logger logging.Logger) *CommentsService {
	return &CommentsService{
		db:         db,
		repos:      m,
		professors: professors,
		logger:     logger.With("module", "comments_service"),
	}
}

// Create stores a new rating by user for the given professor. A second rating
// for the same professor fails with common.ErrDuplicateComment; the storage
// unique index arbitrates concurrent attempts.
func (s *CommentsService) Create(ctx context.Context, in CreateCommentInput, user *models.User) (*models.Comment, error) {
	professor, err := s.professors.Get(ctx, in.ProfessorID)
	if err != nil {
		return nil, err
	}

	c := &models.Comment{
		Content:   strings.TrimSpace(in.Content),
		Rating:    in.Rating,
		Professor: professor,
		Student:   user.Sanitized(),
	}

	created, err := s.repos.Comments(s.db).Create(ctx, c)
	if err != nil {
		return nil, s.translate(ctx, err, "create comment")
	}
	return created, nil
}

func (s *CommentsService) List(ctx context.Context, filter CommentFilter) (*CommentPage, error) {
	if filter.Page < 1 {
		filter.Page = defaultCommentPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultCommentLimit
	}

	data, total, err := s.repos.Comments(s.db).List(ctx, comments.Filter{
		ProfessorID: filter.ProfessorID,
		UserID:      filter.UserID,
		Search:      filter.Search,
		Page:        filter.Page,
		Limit:       filter.Limit,
	})
	if err != nil {
		return nil, s.translate(ctx, err, "list comments")
	}

	return &CommentPage{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *CommentsService) Get(ctx context.Context, id string) (*models.Comment, error) {
	c, err := s.repos.Comments(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, "get comment")
	}
	return c, nil
}

// Update modifies a comment's content or rating. Only the owner or an
// administrator may do so.
func (s *CommentsService) Update(ctx context.Context, id string, in UpdateCommentInput, user *models.User) (*models.Comment, error) {
	repo := s.repos.Comments(s.db)

	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, "update comment")
	}
	if err := s.authorizeOwner(ctx, c, user, "update"); err != nil {
		return nil, err
	}

	if in.Content != nil {
		c.Content = strings.TrimSpace(*in.Content)
	}
	if in.Rating != nil {
		c.Rating = *in.Rating
	}

	updated, err := repo.Update(ctx, c)
	if err != nil {
		return nil, s.translate(ctx, err, "update comment")
	}
	return updated, nil
}

// Remove deletes a comment under the same ownership rule as Update.
func (s *CommentsService) Remove(ctx context.Context, id string, user *models.User) (*models.Comment, error) {
	repo := s.repos.Comments(s.db)

	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, "remove comment")
	}
	if err := s.authorizeOwner(ctx, c, user, "delete"); err != nil {
		return nil, err
	}

	if err := repo.Delete(ctx, id); err != nil {
		return nil, s.translate(ctx, err, "remove comment")
	}
	return c, nil
}

// ProfessorRating aggregates a professor's comments. No comments at all is a
// not-found condition, matching the read API's contract.
func (s *CommentsService) ProfessorRating(ctx context.Context, professorID string) (*comments.Rating, error) {
	if _, err := s.professors.Get(ctx, professorID); err != nil {
		return nil, err
	}

	rating, err := s.repos.Comments(s.db).ProfessorRating(ctx, professorID)
	if err != nil {
		return nil, s.translate(ctx, err, "professor rating")
	}
	return rating, nil
}

func (s *CommentsService) authorizeOwner(ctx context.Context, c *models.Comment, user *models.User, action string) error {
	if c.Student != nil && c.Student.ID == user.ID {
		return nil
	}
	if user.HasAnyRole(auth.RoleAdmin) {
		return nil
	}
	s.logger.Warn(ctx, "comment mutation denied",
		"action", action, "comment", c.ID, "user", user.Email)
	return common.ErrNotOwner
}

func (s *CommentsService) translate(ctx context.Context, err error, op string) error {
	switch {
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrDuplicateComment):
		return err
	default:
		s.logger.Error(ctx, "unexpected storage failure", "op", op, "error", err.Error())
		return common.ErrInternal
	}
}
