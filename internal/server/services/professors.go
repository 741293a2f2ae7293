package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/unirate/unirate/internal/common"
	"github.com/unirate/unirate/internal/logging"
	"github.com/unirate/unirate/internal/server/models"
	"github.com/unirate/unirate/internal/server/repositories/professors"
	"github.com/unirate/unirate/internal/server/repositories/repomanager"
)

type CreateProfessorInput struct {
	Name         string
	Department   string
	UniversityID string
}

type UpdateProfessorInput struct {
	Name         *string
	Department   *string
	UniversityID *string
}

type ProfessorFilter struct {
	UniversityID string
	Search       string
}

// ProfessorsService manages professor records. Creation and reassignment
// validate the university through the universities service, so a dangling
// reference fails before the insert.
type ProfessorsService struct {
	db           *sql.DB
	repos        repomanager.RepositoryManager
	universities *UniversitiesService
	logger       logging.Logger
}

func NewProfessorsService(db *sql.DB, m repomanager.RepositoryManager, universities *UniversitiesService, logger logging.Logger) *ProfessorsService {
	return &ProfessorsService{
		db:           db,
		repos:        m,
		universities: universities,
		logger:       logger.With("module", "professors_service"),
	}
}

func (s *ProfessorsService) Create(ctx context.Context, in CreateProfessorInput) (*models.Professor, error) {
	university, err := s.universities.Get(ctx, in.UniversityID)
	if err != nil {
		return nil, err
	}

	p := &models.Professor{
		Name:       strings.TrimSpace(in.Name),
		Department: strings.TrimSpace(in.Department),
		University: university,
	}

	created, err := s.repos.Professors(s.db).Create(ctx, p)
	if err != nil {
		return nil, s.translate(ctx, err, "create professor")
	}
	return created, nil
}

func (s *ProfessorsService) List(ctx context.Context, filter ProfessorFilter) ([]*models.Professor, error) {
	list, err := s.repos.Professors(s.db).List(ctx, professors.Filter{
		UniversityID: filter.UniversityID,
		Search:       filter.Search,
	})
	if err != nil {
		return nil, s.translate(ctx, err, "list professors")
	}
	return list, nil
}

func (s *ProfessorsService) Get(ctx context.Context, id string) (*models.Professor, error) {
	p, err := s.repos.Professors(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, "get professor")
	}
	return p, nil
}

func (s *ProfessorsService) Update(ctx context.Context, id string, in UpdateProfessorInput) (*models.Professor, error) {
	repo := s.repos.Professors(s.db)

	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, "update professor")
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Department != nil {
		p.Department = strings.TrimSpace(*in.Department)
	}
	if in.UniversityID != nil {
		university, err := s.universities.Get(ctx, *in.UniversityID)
		if err != nil {
			return nil, err
		}
		p.University = university
	}

	updated, err := repo.Update(ctx, p)
	if err != nil {
		return nil, s.translate(ctx, err, "update professor")
	}
	return updated, nil
}

func (s *ProfessorsService) Remove(ctx context.Context, id string) (*models.Professor, error) {
	repo := s.repos.Professors(s.db)

	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, "remove professor")
	}

	if err := repo.Delete(ctx, id); err != nil {
		return nil, s.translate(ctx, err, "remove professor")
	}
	return p, nil
}

func (s *ProfessorsService) translate(ctx context.Context, err error, op string) error {
	if errors.Is(err, common.ErrNotFound) {
		return err
	}
	s.logger.Error(ctx, "unexpected storage failure", "op", op, "error", err.Error())
	return common.ErrInternal
}
