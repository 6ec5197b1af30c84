// @title memorybox API
// @version 1.0
// @description Event photo and memory sharing backend.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/memorybox/backend/internal/config"
	"github.com/memorybox/backend/internal/db"
	"github.com/memorybox/backend/internal/handler"
	"github.com/memorybox/backend/internal/logging"
	"github.com/memorybox/backend/internal/service"
	"github.com/memorybox/backend/internal/storage"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := &db.Postgres{Pool: pool}
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	authService, err := service.NewAuthService(repo, cfg.Auth, logger.Named("auth"))
	if err != nil {
		return err
	}
	if err := authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logger.Error("failed to initialize admin", zap.Error(err))
	}

	var images service.ImageStore
	if cfg.Storage.Enabled() {
		store, err := storage.NewS3Store(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		images = store
	} else {
		logger.Warn("S3_ENDPOINT not set, photo objects will not be managed")
	}

	settingsService := service.NewSettingsService(repo)
	svcs := handler.Services{
		Auth:     authService,
		Photos:   service.NewPhotoService(repo, images, settingsService, logger.Named("photos")),
		Memories: service.NewMemoryService(repo),
		Settings: settingsService,
		QRCode:   service.NewQRCodeService(settingsService),
	}

	gin.SetMode(cfg.Server.Mode)
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: handler.NewRouter(svcs, logger, cfg.CORS.AllowedOrigins),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
