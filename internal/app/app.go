package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/meetroom-backend/internal/adapter/postgres"
	companyrepo "github.com/heartmarshall/meetroom-backend/internal/adapter/postgres/company"
	meetingrepo "github.com/heartmarshall/meetroom-backend/internal/adapter/postgres/meeting"
	roomrepo "github.com/heartmarshall/meetroom-backend/internal/adapter/postgres/room"
	userrepo "github.com/heartmarshall/meetroom-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/meetroom-backend/internal/auth"
	"github.com/heartmarshall/meetroom-backend/internal/config"
	authsvc "github.com/heartmarshall/meetroom-backend/internal/service/auth"
	"github.com/heartmarshall/meetroom-backend/internal/service/company"
	"github.com/heartmarshall/meetroom-backend/internal/service/meeting"
	"github.com/heartmarshall/meetroom-backend/internal/service/room"
	"github.com/heartmarshall/meetroom-backend/internal/transport/middleware"
	"github.com/heartmarshall/meetroom-backend/internal/transport/rest"
	"github.com/heartmarshall/meetroom-backend/migrations"
)

const rateLimiterCleanup = 5 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		buildInfo(),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	handler, stop := newHandler(logger, cfg, pool)
	defer stop()

	return serve(ctx, logger, newServer(cfg.Server, handler), cfg.Server.ShutdownTimeout)
}

// newHandler wires repositories, services and REST handlers on top of pool.
// stop releases background resources of the transport layer.
func newHandler(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool) (http.Handler, func()) {
	// Repositories.
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	companies := companyrepo.New(pool)
	meetings := meetingrepo.New(pool)
	rooms := roomrepo.New(pool, meetings)

	// Auth primitives.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	// Services.
	authService := authsvc.NewService(logger, users, hasher, jwtMgr)
	companyService := company.NewService(logger, companies, users, hasher, txm)
	roomService := room.NewService(logger, users, rooms)
	meetingService := meeting.NewService(logger, users, rooms, meetings, txm, meeting.Limits{
		MaxDuration:     cfg.Booking.MaxMeetingDuration,
		MaxParticipants: cfg.Booking.MaxParticipants,
	})

	limiter := middleware.NewRateLimiter(rateLimiterCleanup)

	handler := rest.NewRouter(logger, rest.Handlers{
		Health:  rest.NewHealthHandler(pool, Version),
		Auth:    rest.NewAuthHandler(authService, logger),
		Company: rest.NewCompanyHandler(companyService, logger),
		Room:    rest.NewRoomHandler(roomService, logger),
		Meeting: rest.NewMeetingHandler(meetingService, logger),
	}, authService, limiter, rest.RouterConfig{
		CORS:           cfg.CORS,
		LoginRateLimit: cfg.Auth.LoginRateLimit,
	})

	return handler, limiter.Stop
}

func newServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// serve runs srv until it fails or ctx is done, then drains open requests
// for at most shutdownTimeout.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}
