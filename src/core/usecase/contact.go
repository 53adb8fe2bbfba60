// Package usecase implements the application services of the phone book.
package usecase

import (
	"context"
	"errors"
	"log/slog"

	"phonebook/src/core/ports"
)

// ContactService maps stored contacts to dtos and guards mutations
// with an existence check.
type ContactService struct {
	repo ports.ContactRepository
	log  *slog.Logger
}

var _ ports.ContactService = (*ContactService)(nil)

func NewContactService(repo ports.ContactRepository, log *slog.Logger) *ContactService {
	return &ContactService{repo: repo, log: log}
}

func (s *ContactService) GetAllContacts(ctx context.Context) ([]ports.ContactDto, error) {
	contacts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ports.ContactDto, 0, len(contacts))
	for i := range contacts {
		out = append(out, ports.ContactDtoFromDomain(&contacts[i]))
	}
	return out, nil
}

func (s *ContactService) GetContactByID(ctx context.Context, id int64) (*ports.ContactDto, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := ports.ContactDtoFromDomain(contact)
	return &dto, nil
}

func (s *ContactService) CreateContact(ctx context.Context, in ports.CreateContactDto) (*ports.ContactDto, error) {
	created, err := s.repo.Create(ctx, in.ToDomain())
	if err != nil {
		return nil, err
	}
	if !created.IsPersisted() {
		return nil, errors.New("create contact: store returned no identifier")
	}
	s.log.Info("contact created", "contact_id", created.ID)
	dto := ports.ContactDtoFromDomain(created)
	return &dto, nil
}

func (s *ContactService) UpdateContact(ctx context.Context, id int64, in ports.CreateContactDto) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	existing.Name = in.Name
	existing.PhoneNumber = in.PhoneNumber
	if err := s.repo.Update(ctx, id, existing); err != nil {
		return err
	}
	s.log.Info("contact updated", "contact_id", id)
	return nil
}

func (s *ContactService) DeleteContact(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("contact deleted", "contact_id", id)
	return nil
}
