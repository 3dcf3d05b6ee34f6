package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"photo-location-service/internal/adapters/repositories"
	"photo-location-service/internal/api"
	"photo-location-service/internal/config"
	"photo-location-service/internal/platform/db"
	"photo-location-service/internal/ports"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// main is the application composition root.
// It wires a concrete photo repository (SQLite, Postgres or in-memory) behind the port and starts the HTTP server.
func main() {
	config.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closeRepo()

	router := api.NewRouter(repo, cfg.NearestLimit)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server listening addr=:%s driver=%s", cfg.Port, cfg.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

// openRepository builds the repository named by DB_DRIVER. SQL drivers get
// their schema initialized and seeded on startup for local runs; the memory
// driver holds the seed file only.
func openRepository(ctx context.Context, cfg config.Server) (ports.PhotoRepository, func() error, error) {
	if cfg.Driver == "memory" {
		photos, err := repositories.LoadSeed(cfg.SeedPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open repository: %w", err)
		}
		repo, err := repositories.NewMemoryPhotoRepository(photos...)
		if err != nil {
			return nil, nil, fmt.Errorf("open repository: %w", err)
		}
		return repo, func() error { return nil }, nil
	}

	conn, dialect, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := initAndSeed(ctx, conn, dialect, cfg.SeedPath); err != nil {
		conn.Close()
		return nil, nil, err
	}

	if cfg.Driver == "postgres" {
		return repositories.NewSQLPhotoRepository(conn), conn.Close, nil
	}
	return repositories.NewSqlitePhotoRepository(conn), conn.Close, nil
}

func openDB(cfg config.Server) (*sql.DB, repositories.Dialect, error) {
	if cfg.Driver == "postgres" {
		conn, err := db.Open(cfg.DatabaseURL)
		return conn, repositories.Postgres, err
	}

	conn, err := db.OpenSqlite(cfg.DBPath)
	if err != nil {
		return nil, repositories.Dialect{}, err
	}
	// A single connection keeps writes serialized on the SQLite file.
	conn.SetMaxOpenConns(1)
	return conn, repositories.Sqlite, nil
}

func initAndSeed(ctx context.Context, conn *sql.DB, d repositories.Dialect, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(ctx, conn, d, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
