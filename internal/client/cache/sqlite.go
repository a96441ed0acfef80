package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/nextread/nextread-cli/internal/client/cache/migrations"
	"github.com/nextread/nextread-cli/internal/client/models"
	"github.com/nextread/nextread-cli/internal/dbx"
)

// snapshotKey matches the storage key the web client used, so the snapshot
// stays recognisable in the database.
const snapshotKey = "nextread_books"

// SQLiteStore implements Store over a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the cache database at path and applies
// migrations.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) Save(ctx context.Context, books []models.Book) error {
	return s.save(ctx, s.db, books)
}

func (s *SQLiteStore) Load(ctx context.Context) ([]models.Book, error) {
	return s.load(ctx, s.db)
}

// Prepend runs the read-modify-write inside a transaction so a concurrent
// Save cannot tear the snapshot.
func (s *SQLiteStore) Prepend(ctx context.Context, book models.Book) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		books, err := s.load(ctx, tx)
		if err != nil && !errors.Is(err, ErrNoSnapshot) {
			return err
		}
		return s.save(ctx, tx, append([]models.Book{book}, books...))
	})
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) save(ctx context.Context, db dbx.DBTX, books []models.Book) error {
	payload, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	query := `INSERT INTO catalog_snapshot (key, payload, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET payload = excluded.payload,
				updated_at = excluded.updated_at
	`
	if _, err := db.ExecContext(ctx, query, snapshotKey, payload); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) load(ctx context.Context, db dbx.DBTX) ([]models.Book, error) {
	var payload []byte
	row := db.QueryRowContext(ctx, `SELECT payload FROM catalog_snapshot WHERE key = ?`, snapshotKey)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var books []models.Book
	if err := json.Unmarshal(payload, &books); err != nil {
		// A corrupt snapshot is treated as absent so callers fall through
		// to the seed list.
		return nil, ErrNoSnapshot
	}
	return books, nil
}
