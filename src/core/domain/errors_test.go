package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *DomainError
		want string
	}{
		{
			name: "base only",
			err:  &DomainError{Base: ErrNotFound},
			want: "resource not found",
		},
		{
			name: "with message",
			err:  NewContactNotFoundError(42),
			want: "resource not found: contact 42",
		},
		{
			name: "with field",
			err:  NewValidationError("name", "is required"),
			want: "invalid input: is required (field: name)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("get contact: %w", NewContactNotFoundError(7))

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.False(t, IsNotFound(errors.New("connection refused")))
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("id", "must be an integer")

	assert.True(t, IsValidationError(err))
	assert.False(t, IsNotFound(err))

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "id", domainErr.Field)
}

func TestContact_IsPersisted(t *testing.T) {
	t.Parallel()

	var nilContact *Contact
	assert.False(t, nilContact.IsPersisted())
	assert.False(t, NewContact("John Doe", "1234567890").IsPersisted())
	assert.True(t, (&Contact{ID: 1, Name: "John Doe"}).IsPersisted())
}
