package delivery_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(delivery.StatusUnknown))
		assert.Equal(t, 1, int(delivery.Pending))
		assert.Equal(t, 2, int(delivery.Assigned))
		assert.Equal(t, 3, int(delivery.InTransit))
		assert.Equal(t, 4, int(delivery.Delivered))
		assert.Equal(t, 5, int(delivery.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []delivery.Status{
			delivery.Pending,
			delivery.Assigned,
			delivery.InTransit,
			delivery.Delivered,
			delivery.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject StatusUnknown", func(t *testing.T) {
		err := delivery.StatusUnknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		require.Error(t, delivery.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		assert.Equal(t, "PENDING", delivery.Pending.String())
		assert.Equal(t, "ASSIGNED", delivery.Assigned.String())
		assert.Equal(t, "IN_TRANSIT", delivery.InTransit.String())
		assert.Equal(t, "DELIVERED", delivery.Delivered.String())
		assert.Equal(t, "CANCELLED", delivery.Cancelled.String())
		assert.Equal(t, "UNKNOWN", delivery.StatusUnknown.String())
		assert.Equal(t, "UNKNOWN", delivery.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid wire names", func(t *testing.T) {
		cases := map[string]delivery.Status{
			"PENDING":    delivery.Pending,
			"ASSIGNED":   delivery.Assigned,
			"IN_TRANSIT": delivery.InTransit,
			"DELIVERED":  delivery.Delivered,
			"CANCELLED":  delivery.Cancelled,
		}

		for name, expected := range cases {
			status, err := delivery.StatusFromString(name)

			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "pending", "DONE", "UNKNOWN"} {
			status, err := delivery.StatusFromString(name)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, delivery.StatusUnknown, status)
		}
	})
}
