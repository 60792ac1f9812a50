package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Migrator is a thin wrapper over goose for applying SQL migrations at
// service startup.
type Migrator struct {
	db             *sql.DB
	migrationsPath string
}

// NewMigrator creates a migrator for the given database handle.
func NewMigrator(db *sql.DB, migrationsPath string) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("app: set goose dialect: %w", err)
	}
	return &Migrator{db: db, migrationsPath: migrationsPath}, nil
}

// Run applies all pending migrations.
func (m *Migrator) Run(ctx context.Context) error {
	if err := goose.UpContext(ctx, m.db, m.migrationsPath); err != nil {
		return fmt.Errorf("app: apply migrations: %w", err)
	}
	return nil
}

// Version returns the current migration version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("app: get migration version: %w", err)
	}
	return version, nil
}
