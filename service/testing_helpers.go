package service

import (
	"testing"

	"github.com/auchan-scraper/auchan/storage"
	"github.com/labstack/echo/v4"
)

// setupTestService creates a service backed by an in-memory database. The
// auchan table is created only when initialize is true.
func setupTestService(t *testing.T, initialize bool) *Service {
	t.Helper()

	store, cleanup, err := storage.NewTestDB()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(cleanup)

	if initialize {
		if err := store.Initialize(t.Context()); err != nil {
			t.Fatalf("failed to initialize test database: %v", err)
		}
	}

	return New(store, &Config{
		Environment: "test",
		Port:        "8080",
	})
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T, initialize bool) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	svc := setupTestService(t, initialize)
	svc.RegisterRoutes(e)

	return e, svc
}
