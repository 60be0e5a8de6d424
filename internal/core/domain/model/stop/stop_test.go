package stop_test

import (
	"testing"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/stop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStop(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create stop with valid parameters", func(t *testing.T) {
		s, err := stop.NewStop(validID, "General Hospital", []string{"REQ-001", "REQ-002"}, 3)

		require.NoError(t, err)
		assert.NotNil(t, s)
		assert.True(t, s.FacilityID().IsEqual(validID))
		assert.Equal(t, "General Hospital", s.FacilityName())
		assert.Equal(t, []string{"REQ-001", "REQ-002"}, s.RequisitionIDs())
		assert.Equal(t, 3, s.SlotDemand())
		assert.Equal(t, 0, s.Sequence())
		require.NoError(t, s.Validate())
	})

	t.Run("should allow zero slot demand", func(t *testing.T) {
		s, err := stop.NewStop(validID, "Health Post", nil, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, s.SlotDemand())
		assert.Empty(t, s.RequisitionIDs())
	})

	t.Run("should return error for invalid facility ID", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := stop.NewStop(invalidID, "General Hospital", nil, 1)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should return error for empty facility name", func(t *testing.T) {
		s, err := stop.NewStop(validID, "", nil, 1)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "facilityName is required")
	})

	t.Run("should return error for negative slot demand", func(t *testing.T) {
		s, err := stop.NewStop(validID, "General Hospital", nil, -1)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "slotDemand is invalid")
	})

	t.Run("should copy requisition IDs on construction", func(t *testing.T) {
		reqs := []string{"REQ-001"}
		s, err := stop.NewStop(validID, "General Hospital", reqs, 1)
		require.NoError(t, err)

		reqs[0] = "mutated"

		assert.Equal(t, []string{"REQ-001"}, s.RequisitionIDs())
	})
}

func TestRestoreStop(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should restore stop with full attribute set", func(t *testing.T) {
		s, err := stop.RestoreStop(
			validID, "General Hospital", "GH-01", "Abuja Municipal", "Central",
			[]string{"REQ-003"}, 2, 120.5, 0.8,
		)

		require.NoError(t, err)
		assert.Equal(t, "GH-01", s.FacilityCode())
		assert.Equal(t, "Abuja Municipal", s.LGA())
		assert.Equal(t, "Central", s.Zone())
		assert.InDelta(t, 120.5, s.WeightKg(), 0.0001)
		assert.InDelta(t, 0.8, s.VolumeM3(), 0.0001)
	})

	t.Run("should return error for negative weight", func(t *testing.T) {
		s, err := stop.RestoreStop(validID, "General Hospital", "", "", "", nil, 1, -1, 0)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "weightKg is invalid")
	})

	t.Run("should return error for negative volume", func(t *testing.T) {
		s, err := stop.RestoreStop(validID, "General Hospital", "", "", "", nil, 1, 0, -0.5)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "volumeM3 is invalid")
	})
}

func TestStop_Validate(t *testing.T) {
	t.Run("zero value should fail validation", func(t *testing.T) {
		var s stop.Stop

		require.ErrorIs(t, s.Validate(), stop.ErrStopIsNotConstructed)
	})

	t.Run("nil stop should fail validation", func(t *testing.T) {
		var s *stop.Stop

		require.ErrorIs(t, s.Validate(), stop.ErrStopIsNotConstructed)
	})
}

func TestStop_IsEqual(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	t.Run("should return true for same facility", func(t *testing.T) {
		a, err := stop.NewStop(id1, "Clinic A", nil, 1)
		require.NoError(t, err)
		b, err := stop.NewStop(id1, "Clinic B", nil, 2) // Same identity, different attributes
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should return false for different facilities", func(t *testing.T) {
		a, err := stop.NewStop(id1, "Clinic A", nil, 1)
		require.NoError(t, err)
		b, err := stop.NewStop(id2, "Clinic A", nil, 1)
		require.NoError(t, err)

		assert.False(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})
}
