package vehicle_test

import (
	"testing"

	"batching/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTier(t *testing.T) {
	t.Run("should create tier with valid parameters", func(t *testing.T) {
		tier, err := vehicle.NewTier("Upper", 1, 4, 250, 1.2)

		require.NoError(t, err)
		assert.Equal(t, "Upper", tier.Name())
		assert.Equal(t, 1, tier.Order())
		assert.Equal(t, 4, tier.SlotCount())
		assert.InDelta(t, 250, tier.CapacityKg(), 0.0001)
		assert.InDelta(t, 1.2, tier.CapacityM3(), 0.0001)
		require.NoError(t, tier.Validate())
	})

	t.Run("should allow unspecified capacity ceilings", func(t *testing.T) {
		tier, err := vehicle.NewTier("Lower", 2, 2, 0, 0)

		require.NoError(t, err)
		assert.Zero(t, tier.CapacityKg())
		assert.Zero(t, tier.CapacityM3())
	})

	t.Run("should return error for invalid parameters", func(t *testing.T) {
		testCases := []struct {
			name       string
			tierName   string
			slotCount  int
			capacityKg float64
			capacityM3 float64
			errText    string
		}{
			{"empty name", "", 2, 0, 0, "name is required"},
			{"zero slot count", "Upper", 0, 0, 0, "slotCount is invalid"},
			{"negative slot count", "Upper", -1, 0, 0, "slotCount is invalid"},
			{"negative weight ceiling", "Upper", 2, -1, 0, "capacityKg is invalid"},
			{"negative volume ceiling", "Upper", 2, 0, -0.1, "capacityM3 is invalid"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := vehicle.NewTier(tc.tierName, 1, tc.slotCount, tc.capacityKg, tc.capacityM3)

				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errText)
			})
		}
	})
}

func TestTier_Validate(t *testing.T) {
	t.Run("zero value should fail validation", func(t *testing.T) {
		var tier vehicle.Tier

		require.ErrorIs(t, tier.Validate(), vehicle.ErrTierIsNotConstructed)
	})
}
