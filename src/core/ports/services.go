package ports

import (
	"context"

	"phonebook/src/core/domain"
)

// ContactDto is the read projection of a contact.
type ContactDto struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"John Doe"`
	PhoneNumber string `json:"phoneNumber" example:"1234567890"`
}

// ContactDtoFromDomain projects a stored contact.
func ContactDtoFromDomain(c *domain.Contact) ContactDto {
	return ContactDto{
		ID:          c.ID,
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
	}
}

// CreateContactDto carries the writable fields of a contact.
// It has no id: the store assigns one on creation.
type CreateContactDto struct {
	Name        string `json:"name" example:"John Doe"`
	PhoneNumber string `json:"phoneNumber" example:"1234567890"`
}

// ToDomain builds an unsaved contact from the dto.
func (d CreateContactDto) ToDomain() *domain.Contact {
	return domain.NewContact(d.Name, d.PhoneNumber)
}

// ContactService is the use case boundary the HTTP handlers depend on.
type ContactService interface {
	GetAllContacts(ctx context.Context) ([]ContactDto, error)
	GetContactByID(ctx context.Context, id int64) (*ContactDto, error)
	CreateContact(ctx context.Context, in CreateContactDto) (*ContactDto, error)
	UpdateContact(ctx context.Context, id int64, in CreateContactDto) error
	DeleteContact(ctx context.Context, id int64) error
}

// HealthChecker reports the health of the application components.
type HealthChecker interface {
	Check(ctx context.Context) *HealthStatus
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
