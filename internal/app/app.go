package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/athletemind/journal-backend/internal/adapter/postgres"
	entryrepo "github.com/athletemind/journal-backend/internal/adapter/postgres/entry"
	tokenrepo "github.com/athletemind/journal-backend/internal/adapter/postgres/token"
	userrepo "github.com/athletemind/journal-backend/internal/adapter/postgres/user"
	"github.com/athletemind/journal-backend/internal/adapter/postgres/userconfig"
	authpkg "github.com/athletemind/journal-backend/internal/auth"
	"github.com/athletemind/journal-backend/internal/config"
	authsvc "github.com/athletemind/journal-backend/internal/service/auth"
	"github.com/athletemind/journal-backend/internal/service/calendar"
	"github.com/athletemind/journal-backend/internal/service/journal"
	"github.com/athletemind/journal-backend/internal/service/questions"
	usersvc "github.com/athletemind/journal-backend/internal/service/user"
	"github.com/athletemind/journal-backend/internal/transport/middleware"
	"github.com/athletemind/journal-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires repositories, services and HTTP handlers, and serves
// until the context is cancelled.
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

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.String("dir", cfg.Database.MigrationsDir))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	entries := entryrepo.New(pool)
	configs := userconfig.New(pool)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, jwtMgr, cfg.Auth)
	userService := usersvc.NewService(logger, users)
	journalService := journal.NewService(logger, entries, txm, cfg.Journal)
	calendarService := calendar.NewService(logger, entries)
	questionsService := questions.NewService(logger, configs, cfg.Journal)

	handlers := rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Me:        rest.NewMeHandler(userService, logger),
		Entries:   rest.NewEntriesHandler(journalService, logger),
		Calendar:  rest.NewCalendarHandler(calendarService, logger),
		Questions: rest.NewQuestionsHandler(questionsService, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	}

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)

	router := rest.NewRouter(handlers, middleware.RequireAuth)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      chain(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// migrate applies pending goose migrations. Goose requires database/sql,
// so it opens its own short-lived connection instead of the pgx pool.
func migrate(ctx context.Context, cfg config.DatabaseConfig) error {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(cfg.MigrationsDir))
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
