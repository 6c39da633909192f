package manifest

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Statuses recorded per output file.
const (
	StatusRendered = "rendered"
	StatusFailed   = "failed"
)

// Record is one row of render history.
type Record struct {
	ID         int64
	RunID      string
	Engine     string
	OutputPath string
	Subset     string
	Entry      string
	Rendition  int
	Checksum   string
	Status     string
	CreatedAt  time.Time
}

// Store manages render history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the manifest database and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure manifest directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) applyMigrations(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS renders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    engine TEXT NOT NULL,
    output_path TEXT NOT NULL,
    subset TEXT NOT NULL,
    entry TEXT NOT NULL,
    rendition INTEGER NOT NULL,
    checksum TEXT NOT NULL,
    status TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_renders_output ON renders(output_path, id);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// Close closes the underlying database connection. Safe on nil.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends one history row.
func (s *Store) Record(ctx context.Context, rec Record) error {
	if s == nil || s.db == nil {
		return errors.New("manifest store is closed")
	}
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO renders (
            run_id, engine, output_path, subset, entry, rendition, checksum, status, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID,
		rec.Engine,
		rec.OutputPath,
		rec.Subset,
		rec.Entry,
		rec.Rendition,
		rec.Checksum,
		rec.Status,
		timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert render record: %w", err)
	}
	return nil
}

// LastChecksum returns the checksum of the most recent successful render for
// an output path, if any.
func (s *Store) LastChecksum(ctx context.Context, outputPath string) (string, bool, error) {
	if s == nil || s.db == nil {
		return "", false, errors.New("manifest store is closed")
	}
	row := s.db.QueryRowContext(
		ctx,
		`SELECT checksum FROM renders
         WHERE output_path = ? AND status = ?
         ORDER BY id DESC LIMIT 1`,
		outputPath,
		StatusRendered,
	)
	var checksum string
	if err := row.Scan(&checksum); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query last checksum: %w", err)
	}
	return checksum, true, nil
}

// Recent returns the newest rows, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("manifest store is closed")
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, engine, output_path, subset, entry, rendition, checksum, status, created_at
         FROM renders ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var created string
		if err := rows.Scan(
			&rec.ID, &rec.RunID, &rec.Engine, &rec.OutputPath,
			&rec.Subset, &rec.Entry, &rec.Rendition,
			&rec.Checksum, &rec.Status, &created,
		); err != nil {
			return nil, fmt.Errorf("scan render record: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, created); parseErr == nil {
			rec.CreatedAt = ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Checksum fingerprints a render invocation: engine, render string, and
// orientation flags. Output paths with an unchanged checksum can be skipped.
func Checksum(engine, renderString string, flip, flop bool) string {
	h := sha256.New()
	h.Write([]byte(engine))
	h.Write([]byte{0})
	h.Write([]byte(renderString))
	h.Write([]byte{0})
	if flip {
		h.Write([]byte("flip"))
	}
	if flop {
		h.Write([]byte("flop"))
	}
	return hex.EncodeToString(h.Sum(nil))
}
