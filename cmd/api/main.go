//	@title			MediaBox API
//	@version		1.0
//	@description	Uploads jpg, jpeg and mp4 files to object storage and returns signed URLs.
//
//	@host		localhost:5001
//	@BasePath	/

package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/mediabox/service/internal/config"
	"github.com/mediabox/service/internal/logger"
	"github.com/mediabox/service/internal/media"
	"github.com/mediabox/service/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		stdlog.Fatalf("invalid config: %v", err)
	}

	log := logger.New(os.Stdout, logger.ParseLevel(cfg.LogLevel))

	// Fail fast: an unreachable backend or missing credentials stop the process here.
	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := storage.NewMinioStorage(initCtx, storage.MinioOptions{
		Endpoint:         cfg.StorageEndpoint,
		Region:           cfg.StorageRegion,
		Bucket:           cfg.StorageBucket,
		CredentialsPath:  cfg.StorageCredentialsPath,
		CredentialsAlias: cfg.StorageCredentialsAlias,
		AccessKey:        cfg.StorageAccessKey,
		SecretKey:        cfg.StorageSecretKey,
	}, log)
	cancelInit()
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	// Wire dependencies: storage → service → handler
	mediaSvc := media.NewService(store, media.Options{
		MaxFileSize:  cfg.MaxFileSize,
		SignedURLTTL: cfg.SignedURLTTL,
	}, log)
	mediaHandler := media.NewHandler(mediaSvc, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRouter(log, mediaHandler),
		// Uploads of up to MAX_FILE_SIZE must fit in these.
		ReadTimeout:  15 * time.Minute,
		WriteTimeout: 15 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Infof("server listening on :%s (env=%s, bucket=%s, max upload %s)",
			cfg.Port, cfg.AppEnv, cfg.StorageBucket, humanize.IBytes(uint64(cfg.MaxFileSize)))
		log.Infof("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Info("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Info("server stopped")
}
