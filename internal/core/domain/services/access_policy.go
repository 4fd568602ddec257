package services

import (
	"logistics/internal/core/domain/model/account"
)

// Action identifies a core operation for authorization purposes.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	ActionUnknown Action = iota

	// ActionCreateDelivery creates a new delivery.
	ActionCreateDelivery

	// ActionViewDelivery reads a single delivery.
	ActionViewDelivery

	// ActionListDeliveries lists the actor's role-dependent view of deliveries.
	ActionListDeliveries

	// ActionAssignDriver binds a driver to a delivery. Admin only.
	ActionAssignDriver

	// ActionUpdateStatus moves a delivery through its lifecycle.
	// Deliberately open to every authenticated role.
	ActionUpdateStatus
)

// getActionStrings returns a map of Action values to their log/error names.
func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionUnknown:        "unknown",
		ActionCreateDelivery: "create_delivery",
		ActionViewDelivery:   "view_delivery",
		ActionListDeliveries: "list_deliveries",
		ActionAssignDriver:   "assign_driver",
		ActionUpdateStatus:   "update_status",
	}
}

// String returns the snake_case name of the action, as used in error
// messages and logs.
func (a Action) String() string {
	if str, ok := getActionStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// AccessPolicy is the pure decision function deciding whether an actor's
// role permits an action. Authentication happens upstream: by the time a
// role reaches the policy, the caller has already been identified.
//
// The single restricted action is ActionAssignDriver, which requires the
// Admin role. Every other action is permitted for any authenticated role;
// what differs between roles there is the visibility of listings, which is
// a query concern, not a permission.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanPerform reports whether the given role may invoke the given action.
// Invalid roles and the unknown action are always denied.
func (AccessPolicy) CanPerform(role account.Role, action Action) bool {
	if role.Validate() != nil {
		return false
	}

	switch action {
	case ActionAssignDriver:
		return role == account.Admin
	case ActionCreateDelivery, ActionViewDelivery, ActionListDeliveries, ActionUpdateStatus:
		return true
	default:
		return false
	}
}
