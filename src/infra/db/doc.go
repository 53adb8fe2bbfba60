// Package db provides database connection and schema management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization (pgx)
//   - Connection health checks
//   - Embedded goose migrations for the contacts schema
//   - A gorm handle sharing the same pool
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//	if err := pg.Migrate(ctx); err != nil {
//	    return err
//	}
package db
