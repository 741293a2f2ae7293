// Package services contains the server-side business logic. This file
// implements AuthService: signup, login, and per-request session resolution.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/unirate/unirate/internal/common"
	"github.com/unirate/unirate/internal/logging"
	"github.com/unirate/unirate/internal/server/auth"
	"github.com/unirate/unirate/internal/server/config"
	"github.com/unirate/unirate/internal/server/models"
)

// UserDirectory is the credential-store collaborator AuthService needs.
// *UsersService implements it.
type UserDirectory interface {
	Create(ctx context.Context, in CreateUserInput) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type SignupInput struct {
	Email    string
	Password string
	FullName string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult bundles the identity (hash stripped) with a fresh token.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// AuthService orchestrates credential issuance and session resolution. It is
// the only layer that translates storage and crypto failures into the domain
// error taxonomy.
type AuthService struct {
	users    UserDirectory
	logger   logging.Logger
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users UserDirectory, cfg *config.Config, logger logging.Logger) *AuthService {
	return &AuthService{
		users:    users,
		logger:   logger.With("module", "auth_service"),
		secret:   []byte(cfg.SecretKey),
		tokenTTL: cfg.AccessTokenValidityDuration,
	}
}

// Signup registers a new account with the baseline role and issues its first
// token. A duplicate normalized email fails with common.ErrDuplicateEmail.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	user, err := s.users.Create(ctx, CreateUserInput{
		Email:    in.Email,
		Password: in.Password,
		FullName: in.FullName,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and issues a token. A missing account and a
// wrong password fail identically with common.ErrInvalidCredentials, so
// callers cannot probe which emails are registered.
//
// Login deliberately does not check IsActive: a deactivated account can still
// obtain a token, but every guarded request then fails in ValidateUser. This
// mirrors the platform's established behavior; tightening it is a product
// decision, not a bug fix.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(in.Password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user.Sanitized(), Token: token}, nil
}

// ValidateUser resolves a token subject to a live account. It runs on every
// guarded request, so it is a single point lookup. An id that no longer
// resolves fails with common.ErrUnknownSubject; transports must surface that
// exactly like an invalid token.
func (s *AuthService) ValidateUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnknownSubject
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, common.ErrAccountInactive
	}

	return user.Sanitized(), nil
}

// Secret exposes the process-wide signing secret to the transport guard.
// Read-only after startup.
func (s *AuthService) Secret() []byte { return s.secret }

func (s *AuthService) issueToken(ctx context.Context, user *models.User) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, s.secret, s.tokenTTL)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err.Error())
		return "", common.ErrInternal
	}
	return token, nil
}
