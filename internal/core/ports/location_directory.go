package ports

import (
	"context"

	"batching/internal/core/domain/model/kernel"
)

// LocationDirectory resolves directory identities to geographic locations.
// The optimizer needs coordinates for every stop and the start location, but
// the working set carries only facility identities.
type LocationDirectory interface {
	// FacilityPoints resolves facility identities to their locations.
	// Returns ObjectNotFound when any facility has no known location.
	FacilityPoints(ctx context.Context, facilityIDs []kernel.UUID) (map[kernel.UUID]kernel.GeoPoint, error)

	// StartPoint resolves a start location of the given type (warehouse or
	// facility) to its coordinates.
	StartPoint(ctx context.Context, id kernel.UUID, locationType string) (kernel.GeoPoint, error)
}
