package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-care-records/internal/adapters/blob/local"
	blobmem "pet-care-records/internal/adapters/blob/memory"
	"pet-care-records/internal/adapters/blob/s3store"
	pg "pet-care-records/internal/adapters/storage/postgres"
	"pet-care-records/internal/platform/config"
	"pet-care-records/internal/platform/logger"
	"pet-care-records/internal/ports/blob"
	"pet-care-records/internal/router"
)

//go:generate swag init --dir ../.. --generalInfo cmd/api/main.go --output ../../docs --outputTypes go --parseInternal

// @title Pet Care Records API
// @version 1.0
// @description Animales, vacunaciones, salud, crecimiento (con foto) e inventario de medicamentos.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pet-care-records: %v\n", err)
		os.Exit(1)
	}
}

// run devuelve el error en vez de salir: así los defers (db.Close, Sync del
// logger) corren también cuando falla el arranque.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sin DB_DSN => repos in-memory (modo dev).
	var db *sql.DB
	if cfg.DB.DSN != "" {
		db, err = pg.Open(cfg.DB.DSN)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"err": err})
			return fmt.Errorf("postgres: %w", err)
		}
		defer db.Close()
		log.Info("using postgres repositories", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory repositories", nil)
	}

	blobs, publicDir, err := newBlobStore(ctx, cfg, log)
	if err != nil {
		log.Error("blob store init failed", map[string]any{"err": err, "driver": cfg.Blob.Driver})
		return fmt.Errorf("blob store: %w", err)
	}

	r := router.NewRouter(router.Options{
		DB:                     db,
		Blobs:                  blobs,
		PublicDir:              publicDir,
		Logger:                 log,
		PageSize:               cfg.Records.PageSize,
		StrictAnimalReferences: cfg.Records.StrictAnimalReferences,
		MaxUploadSize:          cfg.Records.MaxUploadSize,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err})
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
	}
	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", map[string]any{"err": err})
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server exited", nil)
	return nil
}

// newBlobStore elige el backend según BLOB_DRIVER. publicDir solo aplica al
// driver local, que sirve las fotos bajo /storage/.
func newBlobStore(ctx context.Context, cfg *config.Config, log logger.Logger) (blob.Store, string, error) {
	switch cfg.Blob.Driver {
	case config.BlobDriverMemory:
		log.Warn("BLOB_DRIVER=memory, photos are lost on restart", nil)
		return blobmem.NewStore(), "", nil

	case config.BlobDriverS3:
		client, err := s3store.NewClient(ctx, cfg.Blob.S3)
		if err != nil {
			return nil, "", err
		}
		if err := s3store.EnsureBucket(ctx, client, cfg.Blob.S3.BucketName, cfg.Blob.S3.Region, log); err != nil {
			return nil, "", err
		}
		return s3store.NewStore(client, cfg.Blob.S3.BucketName, log), "", nil

	default:
		store, err := local.NewStore(cfg.Blob.LocalDir)
		if err != nil {
			return nil, "", err
		}
		log.Info("using local blob store", map[string]any{"root": store.Root()})
		return store, store.Root(), nil
	}
}
