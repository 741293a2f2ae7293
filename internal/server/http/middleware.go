package http

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/unirate/unirate/internal/common"
	"github.com/unirate/unirate/internal/logging"
	"github.com/unirate/unirate/internal/server/auth"
	"github.com/unirate/unirate/internal/server/models"
)

const identityKey = "identity"

// sessionValidator resolves a verified token subject to a live account.
// *services.AuthService implements it.
type sessionValidator interface {
	ValidateUser(ctx context.Context, id string) (*models.User, error)
}

// Guard is the authenticate-then-authorize middleware pair. Protect composes
// the two stages in a fixed order, so a route can never run its role check
// before the token check.
type Guard struct {
	sessions sessionValidator
	secret   []byte
	logger   logging.Logger
}

func NewGuard(sessions sessionValidator, secret []byte, logger logging.Logger) *Guard {
	return &Guard{
		sessions: sessions,
		secret:   secret,
		logger:   logger.With("module", "guard"),
	}
}

// Authenticate extracts the bearer token, verifies it, resolves the subject,
// and stores the sanitized identity on the request context. Every failure
// aborts before any later handler runs.
func (g *Guard) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			writeError(c, common.ErrInvalidToken)
			return
		}

		claims, err := auth.ParseToken(raw, g.secret)
		if err != nil {
			writeError(c, err)
			return
		}

		user, err := g.sessions.ValidateUser(c.Request.Context(), claims.UserID)
		if err != nil {
			writeError(c, err)
			return
		}

		c.Set(identityKey, user)
		c.Next()
	}
}

// RequireRoles passes when the identity holds at least one of the given
// roles. An empty role list admits any authenticated identity. Which role was
// missing is logged server-side only; the response body is constant.
func (g *Guard) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(roles) == 0 {
			c.Next()
			return
		}

		user, ok := IdentityFromContext(c)
		if !ok {
			// A role check without an identity means the route was registered
			// without the authentication stage.
			g.logger.Error(c.Request.Context(), "role check reached without identity", "path", c.FullPath())
			writeError(c, common.ErrMissingIdentity)
			return
		}

		if user.HasAnyRole(roles...) {
			c.Next()
			return
		}

		g.logger.Warn(c.Request.Context(), "access denied",
			"path", c.FullPath(), "user", user.Email, "required_roles", strings.Join(roles, ","))
		writeError(c, common.ErrInsufficientRole)
	}
}

// Protect returns the guard chain for a route: authentication first, then the
// role check. Route registration appends the handler after these.
func (g *Guard) Protect(roles ...string) []gin.HandlerFunc {
	return []gin.HandlerFunc{g.Authenticate(), g.RequireRoles(roles...)}
}

// IdentityFromContext returns the identity stored by Authenticate.
func IdentityFromContext(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
