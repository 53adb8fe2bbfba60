// Package repo contains implementations of the contact repository port.
//
//   - PostgresContactRepository: raw SQL over a pgx pool (APP_DB_DRIVER=postgres)
//   - GormContactRepository: gorm models over the same pool (APP_DB_DRIVER=gorm)
//   - MemoryContactRepository: process-local store for tests and local runs (APP_DB_DRIVER=memory)
//
// All of them translate "no such row" into domain.NewContactNotFoundError
// and wrap every other failure with the operation that failed.
package repo
