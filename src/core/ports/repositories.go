// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"phonebook/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// ContactRepository persists contacts.
//
// GetByID, Update and Delete return a domain not-found error
// when no contact has the given id.
type ContactRepository interface {
	Repository

	// GetAll returns every contact in insertion order.
	GetAll(ctx context.Context) ([]domain.Contact, error)
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	// Create stores c and returns it with the id assigned by the store.
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	// Update overwrites the name and phone number of the contact at id.
	Update(ctx context.Context, id int64, c *domain.Contact) error
	Delete(ctx context.Context, id int64) error
}
