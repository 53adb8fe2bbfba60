package db

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MigrationTableName is the goose version table.
const MigrationTableName = "schema_migrations"

// Migrate applies all pending migrations embedded in the binary.
func (p *Postgres) Migrate(ctx context.Context) error {
	sqlDB := p.SQLDB()
	defer sqlDB.Close()

	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLogger{log: p.log.With("component", "migrations")})
	goose.SetTableName(MigrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	p.log.Info("database schema up to date", "version", version)
	return nil
}

// gooseLogger forwards goose output to slog.
// Fatalf does not exit; the error is returned to the caller instead.
type gooseLogger struct {
	log *slog.Logger
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
}
