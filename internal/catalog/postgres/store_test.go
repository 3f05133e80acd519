package postgres

import (
	"database/sql"
	"errors"
	"testing"
)

func withSQLOpen(t *testing.T, fn func(driver, dsn string) (*sql.DB, error)) {
	t.Helper()
	openMu.Lock()
	orig := sqlOpen
	sqlOpen = fn
	openMu.Unlock()
	t.Cleanup(func() {
		openMu.Lock()
		sqlOpen = orig
		openMu.Unlock()
	})
}

func TestNewStoreWrapsOpenError(t *testing.T) {
	boom := errors.New("boom")
	var gotDriver, gotDSN string
	withSQLOpen(t, func(driver, dsn string) (*sql.DB, error) {
		gotDriver, gotDSN = driver, dsn
		return nil, boom
	})

	_, err := NewStore("postgres://db.example/labs")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if gotDriver != "pgx" {
		t.Fatalf("driver = %q, want pgx", gotDriver)
	}
	if gotDSN != "postgres://db.example/labs" {
		t.Fatalf("dsn = %q", gotDSN)
	}
}

func TestNewStoreAppliesDefaultDSN(t *testing.T) {
	boom := errors.New("boom")
	var gotDSN string
	withSQLOpen(t, func(_, dsn string) (*sql.DB, error) {
		gotDSN = dsn
		return nil, boom
	})

	if _, err := NewStore(""); err == nil {
		t.Fatal("expected error from stubbed open")
	}
	if gotDSN != defaultDSN {
		t.Fatalf("dsn = %q, want default", gotDSN)
	}
}
