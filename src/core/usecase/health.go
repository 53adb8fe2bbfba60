package usecase

import (
	"context"
	"log/slog"

	"phonebook/src/core/ports"
)

// HealthService handles health check logic.
type HealthService struct {
	db  ports.Repository
	log *slog.Logger
}

var _ ports.HealthChecker = (*HealthService)(nil)

// NewHealthService creates a new HealthService.
// db may be nil, in which case only the process itself is reported.
func NewHealthService(db ports.Repository, log *slog.Logger) *HealthService {
	return &HealthService{
		db:  db,
		log: log,
	}
}

// Check performs a health check of all application components.
// Returns the overall health status.
func (s *HealthService) Check(ctx context.Context) *ports.HealthStatus {
	status := &ports.HealthStatus{
		Status:     "ok",
		Components: make(map[string]ports.ComponentHealth),
	}

	if s.db != nil {
		if err := s.db.Health(ctx); err != nil {
			s.log.Warn("database health check failed", "error", err)
			status.Status = "degraded"
			status.Components["database"] = ports.ComponentHealth{
				Status:  "unhealthy",
				Message: "database unreachable",
			}
		} else {
			status.Components["database"] = ports.ComponentHealth{Status: "healthy"}
		}
	}

	return status
}
