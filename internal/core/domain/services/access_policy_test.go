package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestAccessPolicy_CanPerform(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("assign driver is admin only", func(t *testing.T) {
		assert.True(t, policy.CanPerform(account.Admin, services.ActionAssignDriver))
		assert.False(t, policy.CanPerform(account.BusinessUser, services.ActionAssignDriver))
		assert.False(t, policy.CanPerform(account.Driver, services.ActionAssignDriver))
	})

	t.Run("every valid role may perform the open actions", func(t *testing.T) {
		openActions := []services.Action{
			services.ActionCreateDelivery,
			services.ActionViewDelivery,
			services.ActionListDeliveries,
			services.ActionUpdateStatus,
		}

		for _, role := range []account.Role{account.Admin, account.BusinessUser, account.Driver} {
			for _, action := range openActions {
				assert.True(t, policy.CanPerform(role, action),
					"role %s should be allowed %s", role, action)
			}
		}
	})

	t.Run("invalid role is always denied", func(t *testing.T) {
		assert.False(t, policy.CanPerform(account.Unknown, services.ActionViewDelivery))
		assert.False(t, policy.CanPerform(account.Role(42), services.ActionCreateDelivery))
	})

	t.Run("unknown action is always denied", func(t *testing.T) {
		assert.False(t, policy.CanPerform(account.Admin, services.ActionUnknown))
		assert.False(t, policy.CanPerform(account.Admin, services.Action(42)))
	})
}

func TestAction_String(t *testing.T) {
	tests := map[services.Action]string{
		services.ActionUnknown:        "unknown",
		services.ActionCreateDelivery: "create_delivery",
		services.ActionViewDelivery:   "view_delivery",
		services.ActionListDeliveries: "list_deliveries",
		services.ActionAssignDriver:   "assign_driver",
		services.ActionUpdateStatus:   "update_status",
		services.Action(42):           "unknown",
	}

	for action, want := range tests {
		assert.Equal(t, want, action.String())
	}
}
