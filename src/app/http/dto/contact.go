package dto

import "phonebook/src/core/ports"

// CreateContactRequest is the body of POST /contacts and PUT /contacts/{id}.
type CreateContactRequest struct {
	Name        string `json:"name" binding:"required" example:"New Contact"`
	PhoneNumber string `json:"phoneNumber" binding:"required" example:"1112223333"`
}

// ToInput converts the request to the use case input.
func (r *CreateContactRequest) ToInput() ports.CreateContactDto {
	return ports.CreateContactDto{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
	}
}
