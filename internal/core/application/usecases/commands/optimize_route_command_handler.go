package commands

import (
	"context"
	"fmt"

	"batching/internal/core/ports"
)

// OptimizeRouteCommandHandler runs one route optimization call: it resolves
// the working set and start location to coordinates, delegates to the
// external optimizer, and applies the result to the session's route stage.
// The result is applied only on success; a failed call leaves the prior
// route untouched. Each successful call fully supersedes the previous
// result.
type OptimizeRouteCommandHandler struct {
	optimizer ports.RouteOptimizer
	directory ports.LocationDirectory
}

// NewOptimizeRouteCommandHandler creates a handler for route optimization.
func NewOptimizeRouteCommandHandler(
	optimizer ports.RouteOptimizer,
	directory ports.LocationDirectory,
) OptimizeRouteCommandHandler {
	return OptimizeRouteCommandHandler{
		optimizer: optimizer,
		directory: directory,
	}
}

// Handle optimizes the route and stores the result on the session.
func (h *OptimizeRouteCommandHandler) Handle(ctx context.Context, cmd OptimizeRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sess := cmd.Session()

	request, err := h.buildRequest(ctx, cmd)
	if err != nil {
		return err
	}

	result, err := h.optimizer.Optimize(ctx, request)
	if err != nil {
		return fmt.Errorf("optimize route: %w", err)
	}

	return sess.ApplyRoute(result.Points, result.TotalDistanceKm, result.EstimatedDurationMin)
}

func (h *OptimizeRouteCommandHandler) buildRequest(ctx context.Context, cmd OptimizeRouteCommand) (ports.OptimizeRequest, error) {
	sess := cmd.Session()

	facilityIDs := sess.WorkingSet().FacilityIDs()
	points, err := h.directory.FacilityPoints(ctx, facilityIDs)
	if err != nil {
		return ports.OptimizeRequest{}, err
	}

	// Stops are sent in working-set order.
	stops := make([]ports.OptimizeStop, 0, len(facilityIDs))
	for _, facilityID := range facilityIDs {
		point, ok := points[facilityID]
		if !ok {
			return ports.OptimizeRequest{}, fmt.Errorf("no location for facility %s", facilityID)
		}
		stops = append(stops, ports.OptimizeStop{FacilityID: facilityID, Point: point})
	}

	start, err := h.directory.StartPoint(ctx, sess.StartLocationID(), sess.StartLocationType())
	if err != nil {
		return ports.OptimizeRequest{}, err
	}

	return ports.OptimizeRequest{
		Stops:   stops,
		Start:   start,
		Options: sess.AIOptions(),
	}, nil
}
