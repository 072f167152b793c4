package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-backend/internal/config"
	"clinic-backend/internal/database"
	"clinic-backend/internal/logger"
	"clinic-backend/internal/server"
	"clinic-backend/internal/store"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	if err := run(); err != nil {
		log.Printf("clinic-backend: %v", err)
		os.Exit(1)
	}
}

// run owns every resource it opens, so returning from it always closes the
// database and flushes the logger.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, "clinic-backend")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer zl.Sync()

	db, err := database.InitDB(cfg, zl)
	if err != nil {
		zl.Error("database init failed", zap.Error(err))
		return err
	}
	defer database.Close(db)

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			zl.Error("migration failed", zap.Error(err))
			return err
		}
		zl.Info("schema migrated")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.ListenPort,
		Handler:           server.NewRouter(cfg, zl, store.New(db)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	if err := serve(srv, quit, zl); err != nil {
		zl.Error("server exited", zap.Error(err))
		return err
	}
	return nil
}

// serve runs srv until it fails or a signal arrives on quit. On a signal the
// server is shut down gracefully.
func serve(srv *http.Server, quit <-chan os.Signal, zl *zap.Logger) error {
	errc := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case sig := <-quit:
		zl.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	zl.Info("server stopped")
	return nil
}
