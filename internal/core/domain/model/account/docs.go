// Package account provides identity and authorization types for the
// logistics system.
//
// The package includes:
//   - Role: the closed set of authorization roles (Admin, BusinessUser, Driver)
//   - User: an account entity resolved from the external account collaborator
//   - Actor: the authenticated identity (id + role) invoking an operation
//
// The core never issues or verifies credentials; callers resolve identity
// upstream and pass an Actor into every operation explicitly.
package account
