// Package domain contains the core domain model for the phone book.
//
// This package defines:
//   - Entities: Contact, the only persisted record
//   - Domain Errors: not-found and invalid-input failures raised by the core
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//
// Example:
//
//	c := domain.NewContact("John Doe", "1234567890")
//	// c.ID is zero until the store assigns one
package domain
