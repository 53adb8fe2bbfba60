// Package main is the entry point for the Phone Book API server.
// It initializes all dependencies and starts the HTTP server.
//
//	@title			Phone Book API
//	@version		1.0
//	@description	CRUD API for phone book contacts.
//	@BasePath		/
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"phonebook/src/app/server"
	"phonebook/src/core/ports"
	"phonebook/src/infra/config"
	"phonebook/src/infra/db"
	"phonebook/src/infra/logger"
	"phonebook/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log, closeLog := logger.New(cfg.Log)
	defer closeLog()
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"db_driver", cfg.Database.Driver,
	)

	contactRepo, closeStore, err := openStore(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer closeStore()

	// Create and run HTTP server
	srv := server.New(cfg, log, contactRepo)

	// Run blocks until shutdown signal is received
	return srv.Run()
}

// openStore builds the contact repository selected by cfg.Driver.
// The returned func releases whatever the store holds open.
func openStore(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (ports.ContactRepository, func(), error) {
	if !cfg.UsesPostgres() {
		log.Warn("using in-memory contact store, data is lost on exit")
		return repo.NewMemoryContactRepository(), func() {}, nil
	}

	pg, err := db.New(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Migrate {
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, nil, err
		}
	}

	storeLog := logger.WithComponent(log, "store")
	switch cfg.Driver {
	case config.DriverGorm:
		gdb, err := pg.Gorm()
		if err != nil {
			pg.Close()
			return nil, nil, err
		}
		return repo.NewGormContactRepository(gdb, storeLog), pg.Close, nil
	default:
		return repo.NewPostgresContactRepository(pg, storeLog), pg.Close, nil
	}
}
