package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fintrack/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const migrationsPath = "db/migrations"

// MigrationRunner handles versioned SQL schema migrations
type MigrationRunner struct {
	db             *sql.DB
	driverName     string
	migrationsPath string
}

// NewMigrationRunner creates a new migration runner for the given driver
func NewMigrationRunner(db *sql.DB, driverName string) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		driverName:     driverName,
		migrationsPath: migrationsPath,
	}
}

func (mr *MigrationRunner) databaseDriver() (migratedb.Driver, error) {
	switch mr.driverName {
	case config.DriverSQLite:
		return sqlite3.WithInstance(mr.db, &sqlite3.Config{})
	case config.DriverPostgres:
		return postgres.WithInstance(mr.db, &postgres.Config{})
	default:
		return nil, fmt.Errorf("no migration driver for %q", mr.driverName)
	}
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := mr.databaseDriver()
	if err != nil {
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", absPath),
		mr.driverName,
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return fmt.Errorf("migrations directory not found at %s", mr.migrationsPath)
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		log.Printf("Warning: database is in dirty state at version %d, forcing version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	if err == migrate.ErrNoChange {
		log.Println("No new migrations to apply")
	} else {
		newVersion, _, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get new migration version: %w", err)
		}
		log.Printf("Successfully applied migrations. New version: %d", newVersion)
	}

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled runs SQL migrations when AUTO_MIGRATE is set to true.
// Returning an error (including when disabled or when migration files are
// absent) makes the caller fall back to GORM AutoMigrate.
func RunMigrationsIfEnabled(db *sql.DB, driverName string) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		return fmt.Errorf("auto-migration disabled (AUTO_MIGRATE != true)")
	}

	log.Println("Auto-migration enabled, running migrations...")
	return NewMigrationRunner(db, driverName).RunMigrations()
}
