// Package sqlite provides a catalog driver reading the laboratory seed
// from a single SQLite table of JSON payloads.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"labcore/pkg/domain"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const laboratoriesBucket = "laboratories"

// Store reads the laboratory catalog from a SQLite file.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens the catalog database at path, creating the schema when
// missing so a fresh file behaves as an empty catalog.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "labcore.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS catalog (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create catalog table: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Laboratories loads and decodes the seeded laboratory set.
func (s *Store) Laboratories(ctx context.Context) ([]domain.Laboratory, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM catalog WHERE bucket = ?`, laboratoriesBucket).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select catalog: %w", err)
	}
	var labs []domain.Laboratory
	if err := json.Unmarshal(payload, &labs); err != nil {
		return nil, fmt.Errorf("decode laboratories: %w", err)
	}
	return labs, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Write replaces the seeded laboratory set in the catalog file. It is the
// seeding tool's entry point; the core never calls it.
func Write(path string, labs []domain.Laboratory) error {
	store, err := NewStore(path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	payload, err := json.Marshal(labs)
	if err != nil {
		return fmt.Errorf("encode laboratories: %w", err)
	}
	if _, err := store.db.Exec(`INSERT INTO catalog (bucket, payload) VALUES (?, ?)
		ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`, laboratoriesBucket, payload); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
