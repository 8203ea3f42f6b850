package rest

import (
	"log/slog"
	"net/http"

	"github.com/tallyapp/tally-backend/internal/config"
	"github.com/tallyapp/tally-backend/internal/transport/middleware"
)

// NewRouter assembles the HTTP routes. The rate limiter guards only the
// credential endpoints; everything under /api runs behind the auth
// middleware, which resolves Bearer tokens into context user ids.
func NewRouter(
	logger *slog.Logger,
	cfg config.CORSConfig,
	limiter *middleware.RateLimiter,
	authMW middleware.Middleware,
	auth *AuthHandler,
	habits *HabitHandler,
	logs *DailyLogHandler,
	health *HealthHandler,
) http.Handler {
	mux := http.NewServeMux()

	// Health probes stay outside auth and rate limiting.
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)

	limited := limiter.Limit()
	mux.Handle("POST /api/auth/register", limited(http.HandlerFunc(auth.Register)))
	mux.Handle("POST /api/auth/login", limited(http.HandlerFunc(auth.Login)))
	mux.Handle("POST /api/auth/refresh", limited(http.HandlerFunc(auth.Refresh)))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)
	mux.HandleFunc("GET /api/auth/me", auth.Me)

	mux.HandleFunc("POST /api/habits", habits.Create)
	mux.HandleFunc("GET /api/habits", habits.List)
	mux.HandleFunc("GET /api/habits/{id}", habits.Get)
	mux.HandleFunc("PUT /api/habits/{id}", habits.Update)
	mux.HandleFunc("DELETE /api/habits/{id}", habits.Delete)
	mux.HandleFunc("PUT /api/habits/{id}/archive", habits.Archive)
	mux.HandleFunc("PUT /api/habits/reorder", habits.Reorder)
	mux.HandleFunc("GET /api/habits/{id}/stats", habits.Stats)
	mux.HandleFunc("GET /api/habits/{id}/heatmap", habits.Heatmap)

	mux.HandleFunc("POST /api/logs", logs.Upsert)
	mux.HandleFunc("POST /api/logs/batch", logs.UpsertBatch)
	mux.HandleFunc("GET /api/logs", logs.List)
	mux.HandleFunc("GET /api/logs/{id}", logs.Get)
	mux.HandleFunc("DELETE /api/logs/{id}", logs.Delete)

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg),
		authMW,
	)(mux)
}
