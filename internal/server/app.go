// Package server wires configuration, storage, services and the HTTP API
// together and runs them until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/labmaint/internal/dbx"
	"github.com/dmitrijs2005/labmaint/internal/logging"
	"github.com/dmitrijs2005/labmaint/internal/server/config"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/labmaint/internal/server/rest"
	"github.com/dmitrijs2005/labmaint/internal/server/services"
)

const startupTimeout = 15 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	userService *services.UserService
	server      *rest.Server
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	db, err := sql.Open("pgx", c.DSN())
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return newApp(c, db, logger, repomanager.NewPostgresRepositoryManager()), nil
}

func newApp(c *config.Config, db *sql.DB, logger logging.Logger, m repomanager.RepositoryManager) *App {
	us := services.NewUserService(db, m, c)

	svc := rest.Services{
		Users:          us,
		Laboratorios:   services.NewLaboratorioService(db, m),
		Equipos:        services.NewEquipoService(db, m),
		Programaciones: services.NewProgramacionService(db, m),
		Mantenimientos: services.NewMantenimientoService(db, m),
		Incidencias:    services.NewIncidenciaService(db, m),
		Ping: func(ctx context.Context) error {
			return dbx.Ping(ctx, db)
		},
	}

	opts := rest.Options{
		SecureCookie:   c.SecureCookie,
		LoginRateLimit: c.LoginRateLimit,
	}

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		repomanager: m,
		userService: us,
		server:      rest.NewServer(svc, logger, opts),
	}
}

// prepare checks the database, applies migrations when enabled and makes
// sure the bootstrap admin account exists.
func (app *App) prepare(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	if err := dbx.Ping(ctx, app.db); err != nil {
		return fmt.Errorf("db ping error: %w", err)
	}

	if app.config.RunMigrations {
		if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
			return fmt.Errorf("migrations error: %w", err)
		}
		app.logger.Info(ctx, "Migrations applied")
	}

	created, err := app.userService.EnsureAdmin(ctx)
	if err != nil {
		return fmt.Errorf("admin bootstrap error: %w", err)
	}
	if created {
		app.logger.Warn(ctx, "Created default admin account, change its password", "usuario", "admin")
	}

	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) logRoutes(ctx context.Context) {
	for _, r := range app.server.Routes() {
		app.logger.Debug(ctx, "route", "rule", r.Rule, "methods", strings.Join(r.Methods, ","))
	}
}

// Run blocks until a signal arrives or the HTTP server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...", "config", app.config.String())

	app.initSignalHandler(cancelFunc)

	if err := app.prepare(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logRoutes(ctx)

	if err := app.server.Run(ctx, app.config.EndpointAddrHTTP); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
