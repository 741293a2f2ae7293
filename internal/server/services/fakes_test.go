package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/unirate/unirate/internal/common"
	"github.com/unirate/unirate/internal/dbx"
	"github.com/unirate/unirate/internal/logging"
	"github.com/unirate/unirate/internal/server/models"
	"github.com/unirate/unirate/internal/server/repositories/comments"
	"github.com/unirate/unirate/internal/server/repositories/professors"
	"github.com/unirate/unirate/internal/server/repositories/universities"
	"github.com/unirate/unirate/internal/server/repositories/users"
)

// In-memory repositories for service tests. They enforce the same sentinel
// contracts as the Postgres implementations (ErrNotFound, ErrDuplicateEmail,
// ErrDuplicateComment) so services can be tested without a database.

type fakeRepoManager struct {
	users        *fakeUsersRepo
	universities *fakeUniversitiesRepo
	professors   *fakeProfessorsRepo
	comments     *fakeCommentsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:        &fakeUsersRepo{byID: map[string]*models.User{}},
		universities: &fakeUniversitiesRepo{byID: map[string]*models.University{}},
		professors:   &fakeProfessorsRepo{byID: map[string]*models.Professor{}},
		comments:     &fakeCommentsRepo{byID: map[string]*models.Comment{}},
	}
}

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository { return m.users }

func (m *fakeRepoManager) Universities(db dbx.DBTX) universities.Repository {
	return m.universities
}

func (m *fakeRepoManager) Professors(db dbx.DBTX) professors.Repository { return m.professors }

func (m *fakeRepoManager) Comments(db dbx.DBTX) comments.Repository { return m.comments }

type fakeUsersRepo struct {
	mu   sync.Mutex
	byID map[string]*models.User
	seq  int

	failWith error
}

func (r *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, common.ErrDuplicateEmail
		}
	}
	r.seq++
	c := *u
	c.ID = fmt.Sprintf("user-%d", r.seq)
	r.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (r *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	for _, u := range r.byID {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUsersRepo) List(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.User, 0, len(r.byID))
	for _, u := range r.byID {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeUsersRepo) Update(ctx context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; !ok {
		return nil, common.ErrNotFound
	}
	c := *u
	r.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (r *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeUsersRepo) CountOthers(ctx context.Context, excludeEmail string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.byID {
		if u.Email != excludeEmail {
			n++
		}
	}
	return n, nil
}

func (r *fakeUsersRepo) DeleteOthers(ctx context.Context, keepEmail string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, u := range r.byID {
		if u.Email != keepEmail {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

type fakeUniversitiesRepo struct {
	mu   sync.Mutex
	byID map[string]*models.University
	seq  int
}

func (r *fakeUniversitiesRepo) Create(ctx context.Context, u *models.University) (*models.University, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	c := *u
	c.ID = fmt.Sprintf("uni-%d", r.seq)
	r.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (r *fakeUniversitiesRepo) GetByID(ctx context.Context, id string) (*models.University, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *fakeUniversitiesRepo) List(ctx context.Context) ([]*models.University, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.University, 0, len(r.byID))
	for _, u := range r.byID {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeUniversitiesRepo) Update(ctx context.Context, u *models.University) (*models.University, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; !ok {
		return nil, common.ErrNotFound
	}
	c := *u
	r.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (r *fakeUniversitiesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeUniversitiesRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

func (r *fakeUniversitiesRepo) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.byID))
	r.byID = map[string]*models.University{}
	return n, nil
}

type fakeProfessorsRepo struct {
	mu   sync.Mutex
	byID map[string]*models.Professor
	seq  int
}

func (r *fakeProfessorsRepo) Create(ctx context.Context, p *models.Professor) (*models.Professor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	c := *p
	c.ID = fmt.Sprintf("prof-%d", r.seq)
	r.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (r *fakeProfessorsRepo) GetByID(ctx context.Context, id string) (*models.Professor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *p
	return &out, nil
}

func (r *fakeProfessorsRepo) List(ctx context.Context, filter professors.Filter) ([]*models.Professor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Professor, 0, len(r.byID))
	for _, p := range r.byID {
		if filter.UniversityID != "" && (p.University == nil || p.University.ID != filter.UniversityID) {
			continue
		}
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeProfessorsRepo) Update(ctx context.Context, p *models.Professor) (*models.Professor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return nil, common.ErrNotFound
	}
	c := *p
	r.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (r *fakeProfessorsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeProfessorsRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

func (r *fakeProfessorsRepo) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.byID))
	r.byID = map[string]*models.Professor{}
	return n, nil
}

type fakeCommentsRepo struct {
	mu   sync.Mutex
	byID map[string]*models.Comment
	seq  int
}

func (r *fakeCommentsRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Professor.ID == c.Professor.ID && existing.Student.ID == c.Student.ID {
			return nil, common.ErrDuplicateComment
		}
	}
	r.seq++
	cp := *c
	cp.ID = fmt.Sprintf("comment-%d", r.seq)
	r.byID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeCommentsRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (r *fakeCommentsRepo) List(ctx context.Context, filter comments.Filter) ([]*models.Comment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*models.Comment, 0, len(r.byID))
	for _, c := range r.byID {
		if filter.ProfessorID != "" && c.Professor.ID != filter.ProfessorID {
			continue
		}
		if filter.UserID != "" && c.Student.ID != filter.UserID {
			continue
		}
		cp := *c
		matched = append(matched, &cp)
	}
	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *fakeCommentsRepo) Update(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return nil, common.ErrNotFound
	}
	cp := *c
	r.byID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeCommentsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeCommentsRepo) ProfessorRating(ctx context.Context, professorID string) (*comments.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum, n int64
	for _, c := range r.byID {
		if c.Professor.ID == professorID {
			sum += int64(c.Rating)
			n++
		}
	}
	if n == 0 {
		return nil, common.ErrNotFound
	}
	return &comments.Rating{AverageRating: float64(sum) / float64(n), TotalComments: n}, nil
}

func (r *fakeCommentsRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

func (r *fakeCommentsRepo) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.byID))
	r.byID = map[string]*models.Comment{}
	return n, nil
}

func discardLogger() logging.Logger {
	return logging.NewDiscard()
}
