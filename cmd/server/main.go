// @title Sport Events API
// @version 1.0
// @description Multi-tenant management of sports events and their venues.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/rueidis"
	"golang.org/x/crypto/bcrypt"

	"sportevents/config"
	"sportevents/internal/adapters/auth"
	"sportevents/internal/adapters/email"
	"sportevents/internal/adapters/memory"
	redisadapter "sportevents/internal/adapters/redis"
	deliveryhttp "sportevents/internal/delivery/http"
	"sportevents/internal/delivery/http/controllers"
	"sportevents/internal/delivery/http/middleware"
	"sportevents/internal/domain"
	"sportevents/internal/repository/postgres"
	"sportevents/internal/services"
	"sportevents/internal/usecase"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return err
	}

	toasts, listCache, closeRedis, err := newEphemeralStores(cfg, logger)
	if err != nil {
		return err
	}
	defer closeRedis()

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	venueRepo := postgres.NewVenueRepository(db)
	eventVenueRepo := postgres.NewEventVenueRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Adapters
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}
	mailer := email.NewMailer(cfg.Email, logger)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	// Services
	emailService := services.NewEmailService(mailer, renderer)
	eventService := services.NewEventService(eventRepo, venueRepo, eventVenueRepo, listCache, logger, cfg.RequestTimeout)
	venueService := services.NewVenueService(venueRepo, cfg.RequestTimeout)
	authService := services.NewAuthService(userRepo, auth.NewBcryptHasher(bcrypt.DefaultCost), issuer, emailService,
		logger, cfg.SiteURL, cfg.JWTExpiry, cfg.RequestTimeout)
	actions := usecase.NewDashboardUseCase(eventService, toasts, logger)

	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Auth:      controllers.NewAuthController(logger, authService, cfg.CookieSecure, cfg.JWTExpiry),
		Dashboard: controllers.NewDashboardController(logger, actions),
		Event:     controllers.NewEventController(logger, eventService, actions),
		Venue:     controllers.NewVenueController(logger, venueService),
	}, verifier, logger)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("shutting down server")
	ctx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return server.Shutdown(ctx)
}

// newEphemeralStores returns the toast mailbox and event list cache: Redis when REDIS_ADDR is set,
// in-process otherwise. In-process stores are only correct for a single instance.
func newEphemeralStores(cfg *config.Config, logger *slog.Logger) (domain.ToastMailbox, domain.EventListCache, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set, using in-process toast mailbox and list cache")
		return memory.NewToastMailbox(domain.ToastTTL), memory.NewEventListCache(cfg.ListCacheTTL), func() {}, nil
	}
	client, err := rueidis.NewClient(rueidis.ClientOption{InitAddress: []string{cfg.RedisAddr}})
	if err != nil {
		return nil, nil, nil, err
	}
	return redisadapter.NewToastMailbox(client, domain.ToastTTL),
		redisadapter.NewEventListCache(client, cfg.ListCacheTTL),
		client.Close,
		nil
}
