// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//
// Kernel types carry no business rules of their own; they exist to give
// aggregates and entities a common, validated vocabulary for identity.
package kernel
