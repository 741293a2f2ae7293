package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/unirate/unirate/internal/common"
	"github.com/unirate/unirate/internal/logging"
	"github.com/unirate/unirate/internal/server/auth"
	"github.com/unirate/unirate/internal/server/config"
	"github.com/unirate/unirate/internal/server/models"
	"github.com/unirate/unirate/internal/server/repositories/repomanager"
)

// CreateUserInput carries the fields for account creation. Roles defaults to
// the baseline role when empty; only administrative callers pass explicit
// roles.
type CreateUserInput struct {
	Email    string
	Password string
	FullName string
	Roles    []string
}

// UpdateUserInput carries optional account mutations. Nil pointers leave the
// field unchanged. A non-nil Password triggers a re-hash.
type UpdateUserInput struct {
	Email    *string
	FullName *string
	Password *string
	IsActive *bool
	Roles    []string
}

// UsersService owns account lifecycle: creation with password hashing,
// lookups for the auth flow, administrative updates, and the bootstrap
// administrator.
type UsersService struct {
	db            *sql.DB
	repos         repomanager.RepositoryManager
	logger        logging.Logger
	hashCost      int
	adminEmail    string
	adminPassword string
}

func NewUsersService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UsersService {
	return &UsersService{
		db:            db,
		repos:         m,
		logger:        logger.With("module", "users_service"),
		hashCost:      cfg.BCryptCost,
		adminEmail:    models.NormalizeEmail(cfg.AdminEmail),
		adminPassword: cfg.AdminPassword,
	}
}

// AdminEmail returns the bootstrap administrator address in stored form.
func (s *UsersService) AdminEmail() string { return s.adminEmail }

// EnsureDefaultAdmin creates the bootstrap administrator if it does not
// exist. Failures are logged and swallowed so a broken bootstrap never takes
// the process down.
func (s *UsersService) EnsureDefaultAdmin(ctx context.Context) {
	repo := s.repos.Users(s.db)

	_, err := repo.GetByEmail(ctx, s.adminEmail)
	if err == nil {
		s.logger.Info(ctx, "default admin user exists", "email", s.adminEmail)
		return
	}
	if !errors.Is(err, common.ErrNotFound) {
		s.logger.Error(ctx, "failed to look up default admin user", "error", err.Error())
		return
	}

	hash, err := auth.HashPassword(s.adminPassword, s.hashCost)
	if err != nil {
		s.logger.Error(ctx, "failed to hash default admin password", "error", err.Error())
		return
	}

	admin := &models.User{
		Email:        s.adminEmail,
		FullName:     "System Administrator",
		PasswordHash: hash,
		IsActive:     true,
		Roles:        []string{auth.RoleAdmin},
	}
	admin.Normalize()

	if _, err := repo.Create(ctx, admin); err != nil {
		s.logger.Error(ctx, "failed to create default admin user", "error", err.Error())
		return
	}
	s.logger.Info(ctx, "default admin user created", "email", s.adminEmail)
}

// Create hashes the password, normalizes the email, and persists a new
// account. Returns the account without its hash.
func (s *UsersService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	roles := in.Roles
	if len(roles) == 0 {
		roles = auth.DefaultRoles()
	}
	for _, r := range roles {
		if !auth.IsValidRole(r) {
			return nil, common.ErrInvalidRole
		}
	}

	hash, err := auth.HashPassword(in.Password, s.hashCost)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err.Error())
		return nil, common.ErrInternal
	}

	user := &models.User{
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: hash,
		IsActive:     true,
		Roles:        roles,
	}
	user.Normalize()

	created, err := s.repos.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, s.translate(ctx, err, "create user")
	}

	return created.Sanitized(), nil
}

// GetByEmail looks up an account by normalized email. The returned user
// includes the password hash: this lookup exists for the login flow, which
// needs to verify credentials.
func (s *UsersService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repos.Users(s.db).GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		return nil, s.translate(ctx, err, "get user by email")
	}
	return user, nil
}

// GetByID looks up an account by id, hash included. Callers surfacing the
// user outward must sanitize it.
func (s *UsersService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repos.Users(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, "get user by id")
	}
	return user, nil
}

// List returns every account, sanitized.
func (s *UsersService) List(ctx context.Context) ([]*models.User, error) {
	list, err := s.repos.Users(s.db).List(ctx)
	if err != nil {
		return nil, s.translate(ctx, err, "list users")
	}
	result := make([]*models.User, 0, len(list))
	for _, u := range list {
		result = append(result, u.Sanitized())
	}
	return result, nil
}

// Update applies the given mutations. A password change re-hashes; an email
// change is re-normalized and can collide with an existing account.
func (s *UsersService) Update(ctx context.Context, id string, in UpdateUserInput) (*models.User, error) {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, "update user")
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if len(in.Roles) > 0 {
		for _, r := range in.Roles {
			if !auth.IsValidRole(r) {
				return nil, common.ErrInvalidRole
			}
		}
		user.Roles = in.Roles
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password, s.hashCost)
		if err != nil {
			s.logger.Error(ctx, "password hashing failed", "error", err.Error())
			return nil, common.ErrInternal
		}
		user.PasswordHash = hash
	}
	user.Normalize()

	updated, err := repo.Update(ctx, user)
	if err != nil {
		return nil, s.translate(ctx, err, "update user")
	}

	return updated.Sanitized(), nil
}

// Remove deletes an account and returns its last state.
func (s *UsersService) Remove(ctx context.Context, id string) (*models.User, error) {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.translate(ctx, err, "remove user")
	}

	if err := repo.Delete(ctx, id); err != nil {
		return nil, s.translate(ctx, err, "remove user")
	}

	return user.Sanitized(), nil
}

// translate keeps the domain sentinels and collapses everything else into an
// opaque internal error, logging the real cause server-side.
func (s *UsersService) translate(ctx context.Context, err error, op string) error {
	switch {
	case errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrDuplicateEmail):
		return err
	default:
		s.logger.Error(ctx, "unexpected storage failure", "op", op, "error", err.Error())
		return common.ErrInternal
	}
}
