package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrCountPendingDeliveriesQueryIsNotConstructed = errors.New(
	"CountPendingDeliveriesQuery must be created via NewCountPendingDeliveriesQuery constructor",
)

// CountPendingDeliveriesQuery counts the pending deliveries with no driver.
// Used by the backlog monitoring job.
//
// Example:
//
//	query := NewCountPendingDeliveriesQuery()
//	handler := NewCountPendingDeliveriesQueryHandler(db)
//
//	count, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d deliveries awaiting a driver\n", count)
type CountPendingDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewCountPendingDeliveriesQuery creates a query counting the dispatch backlog.
// This is a parameterless query.
func NewCountPendingDeliveriesQuery() CountPendingDeliveriesQuery {
	return CountPendingDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrCountPendingDeliveriesQueryIsNotConstructed if validation fails.
func (q CountPendingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrCountPendingDeliveriesQueryIsNotConstructed)
}
