// Package common defines shared sentinel errors used across server layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control). ErrInternal is the
	// only error surfaced for storage failures that are not recognized as a
	// constraint conflict; the underlying cause goes to the server log.
	ErrInternal = errors.New("internal error")

	// Signup / credential errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")

	// Token and session-resolution errors. ErrUnknownSubject means a token
	// verified fine but its subject no longer resolves; transports must surface
	// it exactly like ErrInvalidToken.
	ErrInvalidToken   = errors.New("invalid token")
	ErrUnknownSubject = errors.New("unknown subject")

	// Guard errors. ErrMissingIdentity marks a role check that ran without a
	// resolved identity, which means a route was registered without the
	// authentication stage.
	ErrMissingIdentity  = errors.New("missing identity")
	ErrInsufficientRole = errors.New("insufficient role")

	// Account-management errors.
	ErrInvalidRole = errors.New("invalid role")

	// Comment-specific errors.
	ErrDuplicateComment = errors.New("professor already rated by this user")
	ErrNotOwner         = errors.New("not the owner")
)
