package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/tallyapp/tally-backend/internal/adapter/postgres"
	dailylogrepo "github.com/tallyapp/tally-backend/internal/adapter/postgres/dailylog"
	habitrepo "github.com/tallyapp/tally-backend/internal/adapter/postgres/habit"
	tokenrepo "github.com/tallyapp/tally-backend/internal/adapter/postgres/token"
	userrepo "github.com/tallyapp/tally-backend/internal/adapter/postgres/user"
	"github.com/tallyapp/tally-backend/internal/auth"
	"github.com/tallyapp/tally-backend/internal/config"
	authsvc "github.com/tallyapp/tally-backend/internal/service/auth"
	dailylogsvc "github.com/tallyapp/tally-backend/internal/service/dailylog"
	habitsvc "github.com/tallyapp/tally-backend/internal/service/habit"
	"github.com/tallyapp/tally-backend/internal/transport/middleware"
	"github.com/tallyapp/tally-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories into services and services into the HTTP
// transport, then serves until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app.Run: connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	habits := habitrepo.New(pool)
	logs := dailylogrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, tx, jwtManager, cfg.Auth)
	habitService := habitsvc.NewService(logger, habits, logs, tx)
	logService := dailylogsvc.NewService(logger, habits, logs, tx)

	limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("app.Run: create rate limiter: %w", err)
	}
	defer limiter.Stop()

	handler := rest.NewRouter(
		logger,
		cfg.CORS,
		limiter,
		middleware.Auth(authService),
		rest.NewAuthHandler(authService, logger),
		rest.NewHabitHandler(habitService, logger),
		rest.NewDailyLogHandler(logService, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app.Run: http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app.Run: shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
