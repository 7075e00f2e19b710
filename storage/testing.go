package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

// NewTestDB creates an isolated in-memory SQLite store for testing. The
// schema is not created; tests call Initialize themselves.
func NewTestDB() (*Storage, func(), error) {
	// Each store gets its own named shared-cache database so every pooled
	// connection sees the same tables while tests stay independent.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", ulid.Make().String())
	database, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open test database: %w", err)
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to ping test database: %w", err)
	}

	cleanup := func() {
		database.Close()
	}

	return newStorage(database), cleanup, nil
}
