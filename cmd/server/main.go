package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/loanbaazar/backend/internal/config"
	"github.com/loanbaazar/backend/internal/handler"
	"github.com/loanbaazar/backend/internal/logging"
	"github.com/loanbaazar/backend/internal/repository"
	"github.com/loanbaazar/backend/internal/service"
	"github.com/loanbaazar/backend/pkg/sheets"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if cfg.UsingDevSecret() {
		slog.Warn("JWT_SECRET not set, using development secret")
	}
	if cfg.AdminPassword == "" {
		slog.Warn("ADMIN_PASSWORD not set, admin login is disabled")
	}

	ctx := context.Background()
	db, contactRepo, closeStore := openStore(ctx, cfg)
	defer closeStore()

	// Spreadsheet mirror is optional; a nil appender disables it.
	var appender service.SheetAppender
	if cfg.Sheets.Enabled() {
		client, err := sheets.NewClient(ctx, sheets.Config{
			ServiceAccountEmail: cfg.Sheets.ServiceAccountEmail,
			PrivateKey:          cfg.Sheets.PrivateKey,
			SpreadsheetID:       cfg.Sheets.SpreadsheetID,
			Range:               cfg.Sheets.Range,
		})
		if err != nil {
			logging.Fatal("failed to build sheets client", "error", err)
		}
		appender = client
		slog.Info("google sheets mirror enabled", "range", cfg.Sheets.Range)
	} else {
		slog.Info("google sheets mirror disabled")
	}

	jwtSecret := []byte(cfg.JWTSecret)
	router := handler.NewRouter(handler.Deps{
		DB:        db,
		Origins:   handler.NewOriginPolicy(cfg.AllowedOrigins),
		Contacts:  service.NewContactService(contactRepo, appender),
		Auth:      service.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, jwtSecret),
		JWTSecret: jwtSecret,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "store", cfg.StoreDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// openStore connects to the configured backend and returns its health probe,
// the contact repository and a cleanup func.
func openStore(ctx context.Context, cfg *config.Config) (repository.DB, repository.ContactRepository, func()) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		return pool, repository.NewPgContactRepository(pool), pool.Close

	default:
		store, err := repository.NewMongoStore(ctx, cfg.MongoURI)
		if err != nil {
			logging.Fatal("failed to connect to mongodb", "error", err)
		}
		repo := repository.NewMongoContactRepository(store.Database())
		if err := repo.EnsureIndexes(ctx); err != nil {
			slog.Warn("failed to ensure contact indexes", "error", err)
		}
		slog.Info("connected to mongodb", "database", store.Database().Name())
		return store, repo, func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Close(closeCtx); err != nil {
				slog.Error("mongodb disconnect failed", "error", err)
			}
		}
	}
}
