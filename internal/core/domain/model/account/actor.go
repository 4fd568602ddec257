package account

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the already-authenticated identity invoking an operation:
// a user id plus the role it was resolved to. Every mutating core operation
// takes the actor as an explicit parameter; there is no ambient
// "current user" state anywhere in the core.
//
// Actor is a value object: immutable once constructed.
type Actor struct { //nolint:recvcheck //using for validation
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewActor creates an actor from a resolved user id and role.
// Both must be valid; authentication happens upstream.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.setID(id),
		actor.setRole(role),
	); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate ensures the actor was created through the constructor.
// Returns ErrActorIsNotConstructed if validation fails.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the acting user's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the acting user's authorization role.
func (a Actor) Role() Role {
	return a.role
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
