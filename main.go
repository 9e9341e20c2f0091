package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daybook-labs/auth-service/internal/config"
	"github.com/daybook-labs/auth-service/internal/handler"
	"github.com/daybook-labs/auth-service/internal/repository/jsonfile"
	"github.com/daybook-labs/auth-service/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store := jsonfile.New(cfg.DataDir)
	store.Load(context.Background())
	slog.Info("account store ready", "users_file", store.Path())

	var passwords service.PasswordScheme
	switch cfg.PasswordScheme {
	case "plaintext":
		slog.Warn("storing credentials verbatim for legacy compatibility; set PASSWORD_SCHEME=bcrypt to hash them")
		passwords = service.PlaintextScheme{}
	default:
		passwords = service.BcryptScheme{Cost: cfg.BcryptCost}
	}

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(store, tokens, passwords)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, tokens)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.CORS(cfg.CORSOrigins, mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
