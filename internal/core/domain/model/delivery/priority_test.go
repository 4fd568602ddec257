package delivery_test

import (
	"testing"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_Validate(t *testing.T) {
	t.Run("should validate valid priorities", func(t *testing.T) {
		for _, priority := range []delivery.Priority{delivery.Low, delivery.Medium, delivery.High} {
			require.NoError(t, priority.Validate())
		}
	})

	t.Run("should reject PriorityUnknown", func(t *testing.T) {
		err := delivery.PriorityUnknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range priority", func(t *testing.T) {
		require.Error(t, delivery.Priority(7).Validate())
	})
}

func TestPriority_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		assert.Equal(t, "LOW", delivery.Low.String())
		assert.Equal(t, "MEDIUM", delivery.Medium.String())
		assert.Equal(t, "HIGH", delivery.High.String())
		assert.Equal(t, "UNKNOWN", delivery.PriorityUnknown.String())
	})
}

func TestPriorityFromString(t *testing.T) {
	t.Run("should parse valid wire names", func(t *testing.T) {
		cases := map[string]delivery.Priority{
			"LOW":    delivery.Low,
			"MEDIUM": delivery.Medium,
			"HIGH":   delivery.High,
		}

		for name, expected := range cases {
			priority, err := delivery.PriorityFromString(name)

			require.NoError(t, err)
			assert.Equal(t, expected, priority)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "low", "URGENT"} {
			priority, err := delivery.PriorityFromString(name)

			require.Error(t, err)
			assert.Equal(t, delivery.PriorityUnknown, priority)
		}
	})
}
