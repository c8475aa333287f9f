package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"walk4you-storefront/internal/config"
	"walk4you-storefront/internal/httpserver"
	checkoutsvc "walk4you-storefront/internal/service/checkout"
	uploadsvc "walk4you-storefront/internal/service/upload"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	deps := httpserver.Deps{
		Issuer: uploadsvc.NewSigner(cfg.Cloudinary),
	}
	if !cfg.Cloudinary.Configured() {
		logger.Printf("cloudinary not configured, signing endpoint will refuse requests")
	}

	if cfg.RedisAddr != "" {
		rdb, err := checkoutsvc.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer rdb.Close()
		deps.Redis = rdb
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, deps)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
