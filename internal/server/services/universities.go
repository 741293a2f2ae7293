package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/unirate/unirate/internal/common"
	"github.com/unirate/unirate/internal/logging"
	"github.com/unirate/unirate/internal/server/models"
	"github.com/unirate/unirate/internal/server/repositories/repomanager"
)

type CreateUniversityInput struct {
	Name     string
	Location string
}

type UpdateUniversityInput struct {
	Name     *string
	Location *string
}

type UniversitiesService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewUniversitiesService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *UniversitiesService {
	return &UniversitiesService{
		db:     db,
		repos:  m,
		logger: logger.With("module", "universities_service"),
	}
}

func (s *UniversitiesService) Create(ctx context.Context, in CreateUniversityInput) (*models.University, error) {
	u := &models.University{
		Name:     strings.TrimSpace(in.Name),
		Location: strings.TrimSpace(in.Location),
	}

	created, err := s.repos.Universities(s.db).Create(ctx, u)
	if err != nil {
		return nil, s.translate(ctx, err, "create university")
	}
	return created, nil
}

func (s *UniversitiesService) List(ctx context.Context) ([]*models.University, error) {
	list, err := s.repos.Universities(s.db).List(ctx)
	if err != nil {
		return nil, s.translate(ctx, err, "list universities")
	}
	return list, nil
}

func (s *UniversitiesService) Get(ctx context.Context, id string) (*models.University, error) {
	u, err := s.repos.Universities(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, "get university")
	}
	return u, nil
}

func (s *UniversitiesService) Update(ctx context.Context, id string, in UpdateUniversityInput) (*models.University, error) {
	repo := s.repos.Universities(s.db)

	u, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, "update university")
	}

	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Location != nil {
		u.Location = strings.TrimSpace(*in.Location)
	}

	updated, err := repo.Update(ctx, u)
	if err != nil {
		return nil, s.translate(ctx, err, "update university")
	}
	return updated, nil
}

func (s *UniversitiesService) Remove(ctx context.Context, id string) (*models.University, error) {
	repo := s.repos.Universities(s.db)

	u, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, "remove university")
	}

	if err := repo.Delete(ctx, id); err != nil {
		return nil, s.translate(ctx, err, "remove university")
	}
	return u, nil
}

func (s *UniversitiesService) translate(ctx context.Context, err error, op string) error {
	if errors.Is(err, common.ErrNotFound) {
		return err
	}
	s.logger.Error(ctx, "unexpected storage failure", "op", op, "error", err.Error())
	return common.ErrInternal
}
