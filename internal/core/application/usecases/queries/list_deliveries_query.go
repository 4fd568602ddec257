package queries

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery retrieves the deliveries visible to the acting user.
// The visible set depends on the actor's role:
//
//   - Admin sees the dispatch backlog: pending deliveries with no driver
//   - BusinessUser sees the deliveries they created
//   - Driver sees the deliveries assigned to them
//
// Example:
//
//	actor, _ := account.NewActor(userID, account.Driver)
//	query, err := NewListDeliveriesQuery(actor)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListDeliveriesQueryHandler(db)
//	deliveries, err := handler.Handle(ctx, query)
type ListDeliveriesQuery struct {
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewListDeliveriesQuery creates a query for the actor's delivery listing.
// Validates that the actor is properly constructed.
func NewListDeliveriesQuery(actor account.Actor) (ListDeliveriesQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListDeliveriesQuery{}, err
	}

	return ListDeliveriesQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDeliveriesQueryIsNotConstructed if validation fails.
func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

// Actor returns the authenticated user requesting the listing.
func (q ListDeliveriesQuery) Actor() account.Actor {
	return q.actor
}
