package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/meetroom-backend/internal/config"
	"github.com/heartmarshall/meetroom-backend/internal/service/auth"
	"github.com/heartmarshall/meetroom-backend/internal/transport/middleware"
)

//go:generate moq -out token_validator_mock_test.go -pkg rest . tokenValidator

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Identity, error)
}

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Company *CompanyHandler
	Room    *RoomHandler
	Meeting *MeetingHandler
}

// RouterConfig holds the transport settings of the API.
type RouterConfig struct {
	CORS config.CORSConfig
	// LoginRateLimit caps login and registration requests per client IP per
	// minute. Zero disables the limit.
	LoginRateLimit int
}

// NewRouter mounts the API on a ServeMux. Probes are served bare; every
// other route runs behind recovery, request id, access log, CORS and
// bearer authentication.
func NewRouter(logger *slog.Logger, h Handlers, tokens tokenValidator, limiter *middleware.RateLimiter, cfg RouterConfig) http.Handler {
	api := http.NewServeMux()

	throttled := func(fn http.HandlerFunc) http.Handler {
		if limiter == nil || cfg.LoginRateLimit <= 0 {
			return fn
		}
		return limiter.Limit(cfg.LoginRateLimit)(fn)
	}

	api.Handle("POST /auth/login", throttled(h.Auth.Login))
	api.Handle("POST /companies", throttled(h.Company.Register))

	api.HandleFunc("GET /users", h.Company.ListUsers)
	api.HandleFunc("POST /users", h.Company.CreateUser)
	api.HandleFunc("PATCH /users/{id}/active", h.Company.SetUserActive)

	api.HandleFunc("GET /rooms", h.Room.List)
	api.HandleFunc("POST /rooms", h.Room.Create)
	api.HandleFunc("GET /rooms/{id}", h.Room.Get)
	api.HandleFunc("PATCH /rooms/{id}", h.Room.Update)
	api.HandleFunc("DELETE /rooms/{id}", h.Room.Delete)

	api.HandleFunc("GET /meetings", h.Meeting.List)
	api.HandleFunc("POST /meetings", h.Meeting.Create)
	api.HandleFunc("GET /meetings/{id}", h.Meeting.Get)
	api.HandleFunc("DELETE /meetings/{id}", h.Meeting.Delete)
	api.HandleFunc("POST /meetings/{id}/participants", h.Meeting.AddParticipant)
	api.HandleFunc("POST /meetings/{id}/response", h.Meeting.Respond)
	api.HandleFunc("DELETE /participants/{id}", h.Meeting.DeleteParticipant)

	wrapped := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
	)(api)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("/", wrapped)

	return mux
}
