package account

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory methods.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User represents an account known to the system: an admin, a business user,
// or a driver. Account management itself (registration, credentials) lives in
// an external collaborator; the core only resolves a user's identity and role,
// plus the display fields carried alongside them.
//
// User follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a valid role from the closed set {Admin, BusinessUser, Driver}
//   - Can only be created through NewUser or RestoreUser
type User struct {
	// id is the unique identifier for the user
	id kernel.UUID

	// email is the user's contact address, used for display only
	email string

	// fullName is the user's display name
	fullName string

	// role decides what the user may do and see
	role Role

	// isConstructed ensures the user was created via a constructor
	isConstructed bool
}

// NewUser creates a new User instance with validation.
// The identifier and role must be valid; email and full name are carried
// as-is for display purposes.
func NewUser(id kernel.UUID, email string, fullName string, role Role) (*User, error) {
	user := &User{
		email:         email,
		fullName:      fullName,
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from persistence.
// Applies the same validation as NewUser.
func RestoreUser(id kernel.UUID, email string, fullName string, role Role) (*User, error) {
	return NewUser(id, email, fullName, role)
}

// Validate ensures the User instance was properly constructed.
// Returns ErrUserIsNotConstructed for zero-value instances.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's contact address.
func (u *User) Email() string {
	return u.email
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.fullName
}

// Role returns the user's authorization role.
func (u *User) Role() Role {
	return u.role
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
