package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httpHandler "github.com/wekeepgrowing/item-service/internal/adapter/handler/http"
	"github.com/wekeepgrowing/item-service/internal/adapter/repository"
	"github.com/wekeepgrowing/item-service/internal/config"
	httpServer "github.com/wekeepgrowing/item-service/internal/infrastructure/http"
	"github.com/wekeepgrowing/item-service/internal/usecase"
	"github.com/wekeepgrowing/item-service/pkg/errors"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 2. Set up logging
	log := cfg.Logger
	defer log.Sync()
	log.Info("item service starting",
		zap.String("version", cfg.Service.Version),
		zap.String("storage_file", cfg.Storage.File))

	// 3. Wire the store, usecase and handler
	store := repository.NewFileStore(cfg.Storage.File, log)
	items := usecase.NewItemUsecase(store, log)
	handler := httpHandler.NewItemHandler(items, log)

	// 4. Build and start the HTTP server
	srv := httpServer.NewServer(
		httpServer.WithPort(cfg.Server.Port),
		httpServer.WithLogger(log),
	)
	srv.RegisterRoutes(handler.RegisterRoutes)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", zap.Error(err))
		}
	}()

	log.Info("server running", zap.Int("port", cfg.Server.Port))

	// 5. Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	// 6. Stop the server with a timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
