package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Gorm opens a gorm handle on top of the pgx pool so both drivers
// share one set of connections.
func (p *Postgres) Gorm() (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: p.SQLDB()}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm postgres: %w", err)
	}
	return gdb, nil
}
