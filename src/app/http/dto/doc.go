// Package dto contains Data Transfer Objects for HTTP requests.
//
// Request types carry gin binding tags and convert to the use case
// input with ToInput. Responses reuse ports.ContactDto directly.
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., CreateContactRequest)
package dto
