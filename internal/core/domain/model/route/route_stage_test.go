package route_test

import (
	"testing"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPoint(t *testing.T, sequence int) route.RoutePoint {
	t.Helper()
	location, err := kernel.NewGeoPoint(9.05785, 7.49508)
	require.NoError(t, err)
	point, err := route.NewRoutePoint(kernel.NewUUID(), location, sequence)
	require.NoError(t, err)
	return point
}

func TestNewRoutePoint(t *testing.T) {
	t.Run("should create point with valid parameters", func(t *testing.T) {
		facilityID := kernel.NewUUID()
		location, err := kernel.NewGeoPoint(6.45407, 3.39467)
		require.NoError(t, err)

		point, err := route.NewRoutePoint(facilityID, location, 2)

		require.NoError(t, err)
		assert.True(t, point.FacilityID().IsEqual(facilityID))
		assert.True(t, point.Point().IsEqual(location))
		assert.Equal(t, 2, point.Sequence())
		require.NoError(t, point.Validate())
	})

	t.Run("should return error for invalid facility ID", func(t *testing.T) {
		var invalidID kernel.UUID
		location, err := kernel.NewGeoPoint(6.45407, 3.39467)
		require.NoError(t, err)

		_, err = route.NewRoutePoint(invalidID, location, 0)

		require.Error(t, err)
	})

	t.Run("should return error for unconstructed location", func(t *testing.T) {
		var location kernel.GeoPoint

		_, err := route.NewRoutePoint(kernel.NewUUID(), location, 0)

		require.Error(t, err)
	})

	t.Run("should return error for negative sequence", func(t *testing.T) {
		location, err := kernel.NewGeoPoint(6.45407, 3.39467)
		require.NoError(t, err)

		_, err = route.NewRoutePoint(kernel.NewUUID(), location, -1)

		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var point route.RoutePoint

		require.ErrorIs(t, point.Validate(), route.ErrRoutePointIsNotConstructed)
	})
}

func TestRouteStage_Apply(t *testing.T) {
	t.Run("should store result atomically", func(t *testing.T) {
		stage := route.NewRouteStage()
		points := []route.RoutePoint{createPoint(t, 0), createPoint(t, 1)}

		err := stage.Apply(points, 42.5, 95)

		require.NoError(t, err)
		assert.True(t, stage.IsOptimized())
		assert.Len(t, stage.Points(), 2)
		assert.InDelta(t, 42.5, stage.DistanceKm(), 0.0001)
		assert.Equal(t, 95, stage.DurationMin())
	})

	t.Run("should fully supersede prior result", func(t *testing.T) {
		stage := route.NewRouteStage()
		require.NoError(t, stage.Apply([]route.RoutePoint{createPoint(t, 0), createPoint(t, 1)}, 42.5, 95))
		replacement := []route.RoutePoint{createPoint(t, 0)}

		require.NoError(t, stage.Apply(replacement, 10, 20))

		assert.Len(t, stage.Points(), 1)
		assert.True(t, stage.Points()[0].FacilityID().IsEqual(replacement[0].FacilityID()))
		assert.InDelta(t, 10, stage.DistanceKm(), 0.0001)
		assert.Equal(t, 20, stage.DurationMin())
	})

	t.Run("should leave prior state untouched on invalid result", func(t *testing.T) {
		stage := route.NewRouteStage()
		original := []route.RoutePoint{createPoint(t, 0)}
		require.NoError(t, stage.Apply(original, 10, 20))

		testCases := []struct {
			name        string
			points      []route.RoutePoint
			distanceKm  float64
			durationMin int
		}{
			{"gapped sequence", []route.RoutePoint{createPoint(t, 0), createPoint(t, 2)}, 5, 5},
			{"unconstructed point", []route.RoutePoint{{}}, 5, 5},
			{"negative distance", []route.RoutePoint{createPoint(t, 0)}, -1, 5},
			{"negative duration", []route.RoutePoint{createPoint(t, 0)}, 5, -1},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				err := stage.Apply(tc.points, tc.distanceKm, tc.durationMin)

				require.Error(t, err)
				assert.Len(t, stage.Points(), 1)
				assert.True(t, stage.Points()[0].FacilityID().IsEqual(original[0].FacilityID()))
				assert.InDelta(t, 10, stage.DistanceKm(), 0.0001)
				assert.Equal(t, 20, stage.DurationMin())
			})
		}
	})

	t.Run("should accept empty result as not optimized", func(t *testing.T) {
		stage := route.NewRouteStage()

		require.NoError(t, stage.Apply(nil, 0, 0))

		assert.False(t, stage.IsOptimized())
	})
}

func TestRouteStage_Reset(t *testing.T) {
	t.Run("should clear back to not optimized", func(t *testing.T) {
		stage := route.NewRouteStage()
		require.NoError(t, stage.Apply([]route.RoutePoint{createPoint(t, 0)}, 10, 20))

		stage.Reset()

		assert.False(t, stage.IsOptimized())
		assert.Empty(t, stage.Points())
		assert.Zero(t, stage.DistanceKm())
		assert.Zero(t, stage.DurationMin())
	})
}

func TestRouteStage_IsOptimized(t *testing.T) {
	t.Run("new stage should not be optimized", func(t *testing.T) {
		assert.False(t, route.NewRouteStage().IsOptimized())
	})
}
