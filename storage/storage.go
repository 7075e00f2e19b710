package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/auchan-scraper/auchan/storage/db"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// DefaultPath is where the store lives when DB_PATH is not set: data/auchan.db
// next to the running executable, independent of the working directory.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return defaultPathFor(exe), nil
}

func defaultPathFor(exe string) string {
	return filepath.Join(filepath.Dir(exe), "data", "auchan.db")
}

type Storage struct {
	db      *sql.DB
	Queries *db.Queries
}

// New opens the SQLite file at dbPath. The schema is left untouched; call
// Initialize before the first insert or read against a new file.
func New(dbPath string) (*Storage, error) {
	dir := filepath.Dir(dbPath)
	if err := ensureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	sqliteDB, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqliteDB.Ping(); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Debug("database opened", "database", dbPath)

	return newStorage(sqliteDB), nil
}

func newStorage(sqlDB *sql.DB) *Storage {
	return &Storage{
		db:      sqlDB,
		Queries: db.New(sqlDB),
	}
}

// Initialize drops the auchan table with every row in it and recreates it
// empty. Ids restart from 1 afterwards.
func (s *Storage) Initialize(ctx context.Context) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	// Reset reads goose_db_version, which a new file does not have yet.
	if _, err := goose.EnsureDBVersionContext(ctx, s.db); err != nil {
		return fmt.Errorf("failed to create goose version table: %w", err)
	}

	if err := goose.ResetContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to drop auchan table: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "migrations"); err != nil {
		return fmt.Errorf("failed to create auchan table: %w", err)
	}

	slog.Info("auchan table initialized")
	return nil
}

// SelectAll returns every stored product ordered by product_id. An empty
// table yields an empty slice.
func (s *Storage) SelectAll(ctx context.Context) ([]db.Auchan, error) {
	products, err := s.Queries.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	if products == nil {
		products = []db.Auchan{}
	}
	return products, nil
}

func (s *Storage) Insert(ctx context.Context, arg db.InsertProductParams) (db.Auchan, error) {
	product, err := s.Queries.InsertProduct(ctx, arg)
	if err != nil {
		return db.Auchan{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return product, nil
}

func (s *Storage) Count(ctx context.Context) (int64, error) {
	count, err := s.Queries.CountProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// WithTransaction runs fn inside a transaction, committing when fn returns
// nil and rolling back otherwise.
func WithTransaction(ctx context.Context, database *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func ensureDir(dir string) error {
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// gooseLogger routes goose output through slog so it never lands on stdout,
// where the export command writes CSV.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	slog.Debug(fmt.Sprintf(format, v...), "component", "goose")
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), "component", "goose")
	os.Exit(1)
}
