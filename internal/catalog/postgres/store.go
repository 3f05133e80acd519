// Package postgres provides a catalog driver reading the laboratory seed
// from a PostgreSQL table of JSON payloads.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"labcore/pkg/domain"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

const (
	defaultDriver = "pgx"
	defaultDSN    = "postgres://localhost/labcore?sslmode=disable"

	laboratoriesBucket = "laboratories"
)

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// Store reads the laboratory catalog from PostgreSQL.
type Store struct {
	db *sql.DB
}

// NewStore opens the catalog using the provided DSN (falls back to
// defaultDSN) and ensures the catalog table exists.
func NewStore(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	openMu.Lock()
	db, err := sqlOpen(defaultDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS labcore_catalog (
		bucket TEXT PRIMARY KEY,
		payload JSONB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create catalog table: %w", err)
	}
	return &Store{db: db}, nil
}

// Laboratories loads and decodes the seeded laboratory set.
func (s *Store) Laboratories(ctx context.Context) ([]domain.Laboratory, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM labcore_catalog WHERE bucket = $1`, laboratoriesBucket).Scan(&payload)
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
