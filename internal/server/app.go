// Package server initializes and runs the ad board API server.
// It opens the PostgreSQL pool, applies migrations, wires services into the
// HTTP transport and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/adboard/internal/logging"
	"github.com/dmitrijs2005/adboard/internal/server/config"
	"github.com/dmitrijs2005/adboard/internal/server/httpapi"
	"github.com/dmitrijs2005/adboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/adboard/internal/server/services"
)

// seams for tests
var (
	openDB               = repomanager.OpenDB
	newRepositoryManager = func() repomanager.RepositoryManager { return repomanager.NewPostgresRepositoryManager() }
	newLogger            = func(level string) logging.Logger { return logging.NewJSONLogger(os.Stdout, level) }
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
	adService   *services.AdService
}

// NewApp connects to the database, brings the schema up to date and builds
// the services. The caller owns the returned App and must Run it, which
// closes the pool on exit.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := newLogger(c.LogLevel)

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	us := services.NewUserService(rm, c)
	as := services.NewAdService(rm)

	return &App{config: c, logger: logger, db: db, userService: us, adService: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewHTTPServer(app.config, app.logger, app.db, app.userService, app.adService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until the HTTP server stops, either on a signal, on
// cancellation of ctx or on a listener error.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}
