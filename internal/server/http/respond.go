package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unirate/unirate/internal/common"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps taxonomy errors to HTTP statuses. Bodies are constant per
// code: token failures and unknown subjects produce identical responses, and
// the 403 body never says which role was missing.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrUnknownSubject):
		writeErrorCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
	case errors.Is(err, common.ErrInvalidCredentials):
		writeErrorCode(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "credentials are not valid")
	case errors.Is(err, common.ErrAccountInactive):
		writeErrorCode(c, http.StatusUnauthorized, "ACCOUNT_INACTIVE", "account is inactive, contact an administrator")
	case errors.Is(err, common.ErrMissingIdentity):
		writeErrorCode(c, http.StatusBadRequest, "MISSING_IDENTITY", "request reached a role check without an identity")
	case errors.Is(err, common.ErrInvalidRole):
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ROLE", "unknown role")
	case errors.Is(err, common.ErrDuplicateEmail):
		writeErrorCode(c, http.StatusBadRequest, "DUPLICATE_EMAIL", "email already registered")
	case errors.Is(err, common.ErrInsufficientRole), errors.Is(err, common.ErrNotOwner):
		writeErrorCode(c, http.StatusForbidden, "FORBIDDEN", "forbidden")
	case errors.Is(err, common.ErrNotFound):
		writeErrorCode(c, http.StatusNotFound, "NOT_FOUND", "not found")
	case errors.Is(err, common.ErrDuplicateComment):
		writeErrorCode(c, http.StatusConflict, "DUPLICATE_COMMENT", "professor already rated by this user")
	default:
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func writeErrorCode(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Code: code, Message: message})
}

func writeBadRequest(c *gin.Context, message string) {
	writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", message)
}
