// Package catalog loads the seeded laboratory catalog backing a console
// deployment. The catalog is read-only for the core: sessions clone what
// they need and mutations never flow back to the seed source.
package catalog

import (
	"context"
	"fmt"
	"os"

	"labcore/internal/catalog/memory"
	"labcore/internal/catalog/postgres"
	"labcore/internal/catalog/sqlite"
	"labcore/pkg/domain"
)

// Store is the read surface every catalog driver provides.
type Store interface {
	Laboratories(ctx context.Context) ([]domain.Laboratory, error)
}

// Driver identifies a concrete catalog backend.
type Driver string

const (
	DriverMemory   Driver = "memory"   // built-in seed (tests / demos)
	DriverSQLite   Driver = "sqlite"   // embedded sqlite file
	DriverPostgres Driver = "postgres" // PostgreSQL server
)

// Open selects a backend using environment variables. Defaults to the
// built-in memory seed when unset.
//
//	LABCORE_CATALOG_DRIVER: memory|sqlite|postgres (default memory)
//	LABCORE_CATALOG_SQLITE_PATH: path to sqlite file (default ./labcore.db)
//	LABCORE_CATALOG_POSTGRES_DSN: postgres DSN when driver=postgres
func Open() (Store, error) {
	driver := os.Getenv("LABCORE_CATALOG_DRIVER")
	if driver == "" {
		driver = string(DriverMemory)
	}
	switch Driver(driver) {
	case DriverMemory:
		return memory.NewStore(memory.SeedLaboratories()...), nil
	case DriverSQLite:
		return sqlite.NewStore(os.Getenv("LABCORE_CATALOG_SQLITE_PATH"))
	case DriverPostgres:
		return postgres.NewStore(os.Getenv("LABCORE_CATALOG_POSTGRES_DSN"))
	default:
		return nil, fmt.Errorf("unknown catalog driver %s", driver)
	}
}
