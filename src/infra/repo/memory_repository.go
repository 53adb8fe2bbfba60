package repo

import (
	"context"
	"slices"
	"sync"

	"phonebook/src/core/domain"
	"phonebook/src/core/ports"
)

// MemoryContactRepository keeps contacts in process memory.
// Ids grow monotonically and are never reused after a delete.
type MemoryContactRepository struct {
	mu       sync.Mutex
	nextID   int64
	contacts []domain.Contact
}

var _ ports.ContactRepository = (*MemoryContactRepository)(nil)

// NewMemoryContactRepository seeds the store with cs.
// Seeds keep their ids when set; others are numbered after the highest seen id.
func NewMemoryContactRepository(cs ...domain.Contact) *MemoryContactRepository {
	r := &MemoryContactRepository{nextID: 1}
	for _, c := range cs {
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	for _, c := range cs {
		if c.ID == 0 {
			c.ID = r.nextID
			r.nextID++
		}
		r.contacts = append(r.contacts, c)
	}
	return r
}

func (r *MemoryContactRepository) Health(context.Context) error {
	return nil
}

func (r *MemoryContactRepository) GetAll(context.Context) ([]domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.contacts), nil
}

func (r *MemoryContactRepository) GetByID(_ context.Context, id int64) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return nil, domain.NewContactNotFoundError(id)
	}
	c := r.contacts[i]
	return &c, nil
}

func (r *MemoryContactRepository) Create(_ context.Context, c *domain.Contact) (*domain.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := domain.Contact{
		ID:          r.nextID,
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
	}
	r.nextID++
	r.contacts = append(r.contacts, created)
	return &created, nil
}

func (r *MemoryContactRepository) Update(_ context.Context, id int64, c *domain.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return domain.NewContactNotFoundError(id)
	}
	r.contacts[i].Name = c.Name
	r.contacts[i].PhoneNumber = c.PhoneNumber
	return nil
}

func (r *MemoryContactRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return domain.NewContactNotFoundError(id)
	}
	r.contacts = slices.Delete(r.contacts, i, i+1)
	return nil
}

// index must be called with mu held.
func (r *MemoryContactRepository) index(id int64) int {
	return slices.IndexFunc(r.contacts, func(c domain.Contact) bool { return c.ID == id })
}
