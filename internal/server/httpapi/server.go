// Package httpapi exposes the user and ad services over HTTP JSON.
package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/adboard/internal/dbx"
	"github.com/dmitrijs2005/adboard/internal/logging"
	"github.com/dmitrijs2005/adboard/internal/server/config"
	"github.com/dmitrijs2005/adboard/internal/server/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// UserService is the part of services.UserService the handlers rely on.
type UserService interface {
	Create(ctx context.Context, db dbx.DBTX, req models.CreateUserRequest) (*models.User, error)
	Get(ctx context.Context, db dbx.DBTX, id int64) (*models.User, error)
	Update(ctx context.Context, db dbx.DBTX, id int64, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, db dbx.DBTX, id int64) (*models.User, error)
}

// AdService is the part of services.AdService the handlers rely on.
type AdService interface {
	Create(ctx context.Context, db dbx.DBTX, ownerID int64, req models.CreateAdRequest) (*models.Ad, error)
	Get(ctx context.Context, db dbx.DBTX, id int64) (*models.Ad, error)
	ListByOwner(ctx context.Context, db dbx.DBTX, ownerID int64) ([]*models.Ad, error)
	Update(ctx context.Context, db dbx.DBTX, id int64, patch models.AdPatch) (*models.AdChange, error)
	Delete(ctx context.Context, db dbx.DBTX, id int64) (*models.Ad, error)
}

type HTTPServer struct {
	address         string
	app             *fiber.App
	db              dbx.Beginner
	users           UserService
	ads             AdService
	logger          logging.Logger
	requestTimeout  time.Duration
	shutdownTimeout time.Duration
}

// NewHTTPServer builds the fiber application and registers all routes.
// db is used only to open the per-request transaction.
func NewHTTPServer(cfg *config.Config, l logging.Logger, db dbx.Beginner, us UserService, as AdService) *HTTPServer {
	s := &HTTPServer{
		address:         cfg.EndpointAddrHTTP,
		db:              db,
		users:           us,
		ads:             as,
		logger:          l.With("module", "http_server"),
		requestTimeout:  cfg.RequestTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "adboard",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(s.accessLog, recover.New())
	s.registerRoutes()

	return s
}

func (s *HTTPServer) registerRoutes() {
	s.app.Get("/ping", s.ping)

	s.app.Post("/user", s.withTx(s.createUser))
	s.app.Get("/user/:user_id<int;min(1)>", s.withTx(s.getUser))
	s.app.Patch("/user/:user_id<int;min(1)>", s.withTx(s.updateUser))
	s.app.Delete("/user/:user_id<int;min(1)>", s.withTx(s.deleteUser))
	s.app.Post("/user/:user_id<int;min(1)>/ads", s.withTx(s.createAd))

	s.app.Get("/ads/user/:user_id<int;min(1)>", s.withTx(s.listAdsByOwner))
	s.app.Get("/ads/:ads_id<int;min(1)>", s.withTx(s.getAd))
	s.app.Patch("/ads/:ads_id<int;min(1)>", s.withTx(s.updateAd))
	s.app.Delete("/ads/:ads_id<int;min(1)>", s.withTx(s.deleteAd))
}

// Run serves HTTP until ctx is cancelled. It then stops accepting
// connections and returns only after in-flight requests have finished or
// the shutdown timeout has passed, so the caller may close the pool.
func (s *HTTPServer) Run(ctx context.Context) error {

	stopped := make(chan error, 1)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		stopped <- s.app.ShutdownWithTimeout(s.shutdownTimeout)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	// Listen returns as soon as shutdown begins, before connections drain.
	if err := s.app.Listen(s.address); err != nil {
		return err
	}

	if ctx.Err() == nil {
		return nil
	}

	if err := <-stopped; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info(ctx, "HTTP server stopped")

	return nil
}

func (s *HTTPServer) ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK"})
}
