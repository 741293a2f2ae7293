// Package http is the gin transport for the rating platform. Routes are
// guarded by the authenticate-then-authorize pair in middleware.go; handlers
// translate between JSON and the service layer.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/unirate/unirate/internal/logging"
	"github.com/unirate/unirate/internal/server/auth"
	"github.com/unirate/unirate/internal/server/config"
	"github.com/unirate/unirate/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	guard  *Guard
	logger logging.Logger
	deps   Deps
}

// Deps are the service collaborators the transport needs.
type Deps struct {
	Auth         *services.AuthService
	Users        *services.UsersService
	Universities *services.UniversitiesService
	Professors   *services.ProfessorsService
	Comments     *services.CommentsService
	Seed         *services.SeedService
}

func NewServer(cfg *config.Config, deps Deps, logger logging.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:    cfg,
		engine: engine,
		guard:  NewGuard(deps.Auth, deps.Auth.Secret(), logger),
		logger: logger.With("module", "http_server"),
		deps:   deps,
	}
	s.routes()
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.EndpointAddr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.logger.Info(ctx, "http server listening", "addr", s.cfg.EndpointAddr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info(shutdownCtx, "http server shutting down")
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authH := NewAuthHandler(s.deps.Auth)
	usersH := NewUsersHandler(s.deps.Users)
	universitiesH := NewUniversitiesHandler(s.deps.Universities)
	professorsH := NewProfessorsHandler(s.deps.Professors, s.deps.Comments)
	commentsH := NewCommentsHandler(s.deps.Comments)
	seedH := NewSeedHandler(s.deps.Seed)

	api := s.engine.Group("/api")

	api.POST("/auth/signup", authH.HandleSignup)
	api.POST("/auth/login", authH.HandleLogin)
	api.GET("/auth/me", s.protect(authH.HandleMe)...)

	api.POST("/users", s.protect(usersH.HandleCreate, auth.RoleAdmin)...)
	api.GET("/users", s.protect(usersH.HandleList, auth.RoleAdmin)...)
	api.GET("/users/:id", s.protect(usersH.HandleGet, auth.RoleAdmin)...)
	api.PATCH("/users/:id", s.protect(usersH.HandleUpdate, auth.RoleAdmin)...)
	api.DELETE("/users/:id", s.protect(usersH.HandleDelete, auth.RoleAdmin)...)

	api.POST("/universities", s.protect(universitiesH.HandleCreate, auth.RoleAdmin)...)
	api.GET("/universities", universitiesH.HandleList)
	api.GET("/universities/:id", universitiesH.HandleGet)
	api.PATCH("/universities/:id", s.protect(universitiesH.HandleUpdate, auth.RoleAdmin)...)
	api.DELETE("/universities/:id", s.protect(universitiesH.HandleDelete, auth.RoleAdmin)...)

	api.POST("/professors", s.protect(professorsH.HandleCreate, auth.RoleAdmin)...)
	api.GET("/professors", professorsH.HandleList)
	api.GET("/professors/:id", professorsH.HandleGet)
	api.GET("/professors/:id/rating", professorsH.HandleRating)
	api.PATCH("/professors/:id", s.protect(professorsH.HandleUpdate, auth.RoleAdmin)...)
	api.DELETE("/professors/:id", s.protect(professorsH.HandleDelete, auth.RoleAdmin)...)

	api.POST("/comments", s.protect(commentsH.HandleCreate, auth.RoleStudent, auth.RoleAdmin)...)
	api.GET("/comments", commentsH.HandleList)
	api.GET("/comments/:id", commentsH.HandleGet)
	api.PATCH("/comments/:id", s.protect(commentsH.HandleUpdate, auth.RoleStudent, auth.RoleAdmin)...)
	api.DELETE("/comments/:id", s.protect(commentsH.HandleDelete, auth.RoleStudent, auth.RoleAdmin)...)

	api.POST("/seed", s.protect(seedH.HandleSeed, auth.RoleAdmin)...)
	api.POST("/unseed", s.protect(seedH.HandleUnseed, auth.RoleAdmin)...)
}

// protect prepends the guard chain to a handler.
func (s *Server) protect(h gin.HandlerFunc, roles ...string) []gin.HandlerFunc {
	return append(s.guard.Protect(roles...), h)
}
