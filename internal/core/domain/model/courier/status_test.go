package courier_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/pkg/errs"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should keep fingerprint wire codes stable", func(t *testing.T) {
		// These numeric values are folded into the state hash and are part of
		// the wire contract with the renderer.
		assert.Equal(t, 0, int(courier.Unknown))
		assert.Equal(t, 1, int(courier.Delivering))
		assert.Equal(t, 2, int(courier.Returning))
		assert.Equal(t, 3, int(courier.Idle))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []courier.Status{
			courier.Delivering,
			courier.Returning,
			courier.Idle,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := courier.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []courier.Status{
			courier.Status(-1),
			courier.Status(4),
			courier.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should use lowercase wire names", func(t *testing.T) {
		assert.Equal(t, "delivering", courier.Delivering.String())
		assert.Equal(t, "returning", courier.Returning.String())
		assert.Equal(t, "idle", courier.Idle.String())
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", courier.Unknown.String())
		assert.Equal(t, "unknown", courier.Status(42).String())
	})
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, courier.Delivering.IsActive())
	assert.True(t, courier.Returning.IsActive())
	assert.False(t, courier.Idle.IsActive())
	assert.False(t, courier.Unknown.IsActive())
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse wire names", func(t *testing.T) {
		tests := map[string]courier.Status{
			"delivering": courier.Delivering,
			"returning":  courier.Returning,
			"idle":       courier.Idle,
		}

		for input, want := range tests {
			status, err := courier.ParseStatus(input)

			require.NoError(t, err)
			assert.Equal(t, want, status)
		}
	})

	t.Run("should be case insensitive", func(t *testing.T) {
		status, err := courier.ParseStatus("Delivering")

		require.NoError(t, err)
		assert.Equal(t, courier.Delivering, status)
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		status, err := courier.ParseStatus("  idle ")

		require.NoError(t, err)
		assert.Equal(t, courier.Idle, status)
	})

	t.Run("should reject unrecognized strings", func(t *testing.T) {
		_, err := courier.ParseStatus("charging")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_TextMarshalling(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		text, err := courier.Delivering.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "delivering", string(text))

		var status courier.Status
		require.NoError(t, status.UnmarshalText(text))
		assert.Equal(t, courier.Delivering, status)
	})

	t.Run("marshalling invalid status fails", func(t *testing.T) {
		_, err := courier.Unknown.MarshalText()

		require.Error(t, err)
	})
}
