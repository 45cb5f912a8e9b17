package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	crudeimportdomain "github.com/smallbiznis/oilimports/internal/crudeimport/domain"
	dimensiondomain "github.com/smallbiznis/oilimports/internal/dimension/domain"
	"gorm.io/gorm"
)

const migrationsTable = "schema_migrations"

// Run brings the schema up to date and reports the resulting version.
// Postgres applies the versioned SQL files; other dialects are created from
// the models and report version 0.
func Run(conn *gorm.DB) (uint, error) {
	if conn == nil {
		return 0, errors.New("migration: nil database handle")
	}
	if conn.Dialector.Name() != "postgres" {
		return 0, AutoMigrate(conn)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return 0, err
	}
	return RunMigrations(sqlDB)
}

// RunMigrations applies pending embedded migrations to a postgres database.
// The migrator is left open since closing it would close db.
func RunMigrations(db *sql.DB) (uint, error) {
	m, err := newMigrator(db)
	if err != nil {
		return 0, err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("migration: up: %w", err)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("migration: read version: %w", err)
	case dirty:
		return version, fmt.Errorf("migration: version %d is dirty", version)
	}
	return version, nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	if db == nil {
		return nil, errors.New("migration: nil database handle")
	}
	files, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("migration: open embedded files: %w", err)
	}
	source, err := iofs.New(files, ".")
	if err != nil {
		return nil, fmt.Errorf("migration: source: %w", err)
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return nil, fmt.Errorf("migration: postgres driver: %w", err)
	}
	return migrate.NewWithInstance("iofs", source, "postgres", driver)
}

// AutoMigrate creates the dimension tables and the fact table from the models.
func AutoMigrate(conn *gorm.DB) error {
	for _, kind := range dimensiondomain.Kinds() {
		if err := conn.Table(kind.Table()).AutoMigrate(&dimensiondomain.Dimension{}); err != nil {
			return fmt.Errorf("migrate %s: %w", kind.Table(), err)
		}
	}
	if err := conn.AutoMigrate(&crudeimportdomain.ImportRecord{}); err != nil {
		return fmt.Errorf("migrate crude_oil_imports: %w", err)
	}
	return nil
}
