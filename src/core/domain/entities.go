package domain

// Contact is a phone book entry.
// ID is assigned by the store on creation and never changes afterwards.
type Contact struct {
	ID          int64
	Name        string
	PhoneNumber string
}

// NewContact builds a Contact that has not been persisted yet.
func NewContact(name, phoneNumber string) *Contact {
	return &Contact{
		Name:        name,
		PhoneNumber: phoneNumber,
	}
}

// IsPersisted reports whether the store has assigned an identifier.
func (c *Contact) IsPersisted() bool {
	return c != nil && c.ID > 0
}
