// Package server initializes and runs the rating-platform server: it opens
// the database, runs migrations, wires services onto the repository manager,
// ensures the bootstrap administrator, and serves HTTP until a signal
// arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/unirate/unirate/internal/logging"
	"github.com/unirate/unirate/internal/server/config"
	httpapi "github.com/unirate/unirate/internal/server/http"
	"github.com/unirate/unirate/internal/server/repositories/repomanager"
	"github.com/unirate/unirate/internal/server/services"
)

type App struct {
	cfg    *config.Config
	logger logging.Logger
	db     *sql.DB
	repos  repomanager.RepositoryManager
	server *httpapi.Server
	users  *services.UsersService
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewDefault()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	repos := repomanager.NewPostgresRepositoryManager()

	usersSvc := services.NewUsersService(db, repos, cfg, logger)
	authSvc := services.NewAuthService(usersSvc, cfg, logger)
	universitiesSvc := services.NewUniversitiesService(db, repos, logger)
	professorsSvc := services.NewProfessorsService(db, repos, universitiesSvc, logger)
	commentsSvc := services.NewCommentsService(db, repos, professorsSvc, logger)
	seedSvc := services.NewSeedService(db, repos, usersSvc, cfg.BCryptCost, logger)

	srv := httpapi.NewServer(cfg, httpapi.Deps{
		Auth:         authSvc,
		Users:        usersSvc,
		Universities: universitiesSvc,
		Professors:   professorsSvc,
		Comments:     commentsSvc,
		Seed:         seedSvc,
	}, logger)

	return &App{
		cfg:    cfg,
		logger: logger,
		db:     db,
		repos:  repos,
		server: srv,
		users:  usersSvc,
	}, nil
}

// Run migrates the schema, ensures the bootstrap administrator, and serves
// until SIGINT/SIGTERM/SIGQUIT.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	app.initSignalHandler(cancel)

	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err.Error())
		}
	}()

	if err := app.repos.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}

	app.users.EnsureDefaultAdmin(ctx)

	app.logger.Info(ctx, "starting app", "addr", app.cfg.EndpointAddr)
	return app.server.Run(ctx)
}

func (app *App) initSignalHandler(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancel()
	}()
}
