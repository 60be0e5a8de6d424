package ports

import (
	"context"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/route"
	"batching/internal/core/domain/model/session"
)

// OptimizeStop is one stop handed to the external optimizer: a facility and
// its location, in working-set order.
type OptimizeStop struct {
	FacilityID kernel.UUID
	Point      kernel.GeoPoint
}

// OptimizeRequest is the payload for one optimization call.
type OptimizeRequest struct {
	Stops   []OptimizeStop
	Start   kernel.GeoPoint
	Options session.AIOptimizationOptions
}

// OptimizeResult is a successful optimizer response: the visiting order plus
// route totals.
type OptimizeResult struct {
	Points               []route.RoutePoint
	TotalDistanceKm      float64
	EstimatedDurationMin int
}

// RouteOptimizer defines the contract for the external route optimization
// service. Calls are fallible and must leave no trace on failure; the caller
// applies the result to its route stage only on success.
type RouteOptimizer interface {
	Optimize(ctx context.Context, request OptimizeRequest) (OptimizeResult, error)
}
