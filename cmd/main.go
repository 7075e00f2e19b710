package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/auchan-scraper/auchan/internal/export"
	"github.com/auchan-scraper/auchan/internal/seed"
	"github.com/auchan-scraper/auchan/service"
	"github.com/auchan-scraper/auchan/storage"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const usage = `usage: auchan <command>

commands:
  init        drop and recreate the auchan table
  seed [n]    insert n fake products (default SEED_COUNT)
  export      write all products as CSV to EXPORT_PATH or stdout
  serve       serve products over HTTP on PORT`

func main() {
	// slog is configured in slog.go via init()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	config, err := service.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		slog.Error("command failed", "command", os.Args[1], "error", err)
		stop()
		os.Exit(1)
	}
}

var commands = map[string]bool{
	"init":   true,
	"seed":   true,
	"export": true,
	"serve":  true,
}

func run(ctx context.Context, config *service.Config, command string, args []string, stdout io.Writer) error {
	if !commands[command] {
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}

	n := config.Seed.Count
	if command == "seed" && len(args) > 0 {
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil || n < 0 {
			return fmt.Errorf("invalid product count %q", args[0])
		}
	}

	db, err := storage.New(config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	switch command {
	case "init":
		return db.Initialize(ctx)
	case "seed":
		_, err = seed.Run(ctx, db, n, gofakeit.New(0))
		return err
	case "export":
		return exportProducts(ctx, db, config.Export.Path, stdout)
	default:
		return serve(ctx, db, config)
	}
}

// exportProducts writes CSV to path, or to stdout when path is empty.
func exportProducts(ctx context.Context, db *storage.Storage, path string, stdout io.Writer) error {
	products, err := db.SelectAll(ctx)
	if err != nil {
		return err
	}
	records := export.FromProducts(products)

	if path == "" {
		if err := export.WriteCSV(stdout, records); err != nil {
			return err
		}
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		if err := export.WriteCSV(f, records); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close export file: %w", err)
		}
	}

	slog.Info("products exported", "count", len(products), "path", path)
	return nil
}

func serve(ctx context.Context, db *storage.Storage, config *service.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())

	// Custom slog request middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			slog.Info("request handled",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start),
				"ip", c.RealIP(),
			)

			return err
		}
	})

	svc := service.New(db, config)
	svc.RegisterRoutes(e)

	addr := fmt.Sprintf(":%s", config.Port)
	slog.Info("auchan product API starting",
		"url", fmt.Sprintf("http://localhost:%s", config.Port),
		"environment", config.Environment,
		"database", config.DBPath,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
