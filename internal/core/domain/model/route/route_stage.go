package route

import (
	"errors"
	"math"
	"slices"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/pkg/errs"
	"batching/internal/pkg/guard"
)

// ErrRoutePointIsNotConstructed is returned when using a RoutePoint that was
// not created through the NewRoutePoint constructor function.
var ErrRoutePointIsNotConstructed = errors.New("RoutePoint must be created via NewRoutePoint constructor")

// RoutePoint is one visit in an optimized route: a facility together with its
// geographic location and its 0-based position in visiting order.
type RoutePoint struct { //nolint:recvcheck //using for validation
	facilityID kernel.UUID
	point      kernel.GeoPoint
	sequence   int

	guard guard.ConstructorGuard
}

// NewRoutePoint creates a route point for a facility at the given location
// and visiting position.
func NewRoutePoint(facilityID kernel.UUID, point kernel.GeoPoint, sequence int) (RoutePoint, error) {
	if err := errors.Join(
		facilityID.Validate(),
		point.Validate(),
	); err != nil {
		return RoutePoint{}, err
	}
	if sequence < 0 {
		return RoutePoint{}, errs.NewValueIsOutOfRangeError("sequence", sequence, 0, math.MaxInt)
	}

	return RoutePoint{
		facilityID: facilityID,
		point:      point,
		sequence:   sequence,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the RoutePoint was created via NewRoutePoint.
func (p RoutePoint) Validate() error {
	return p.guard.Validate(ErrRoutePointIsNotConstructed)
}

// FacilityID returns the facility visited at this point.
func (p RoutePoint) FacilityID() kernel.UUID {
	return p.facilityID
}

// Point returns the geographic location of the visit.
func (p RoutePoint) Point() kernel.GeoPoint {
	return p.point
}

// Sequence returns the 0-based position in visiting order.
func (p RoutePoint) Sequence() int {
	return p.sequence
}

// RouteStage holds the optimization result for a batch in progress. An empty
// point list means "not optimized". Results are applied atomically: a failed
// optimization never touches the prior state, and each successful application
// fully supersedes the previous one.
type RouteStage struct {
	points      []RoutePoint
	distanceKm  float64
	durationMin int
}

// NewRouteStage creates an empty, not-yet-optimized stage.
func NewRouteStage() *RouteStage {
	return &RouteStage{}
}

// Apply replaces the stage with a new optimization result. The incoming
// points must form a contiguous 0..n-1 sequence; distance and duration must
// be non-negative. On error the prior state is left untouched.
func (s *RouteStage) Apply(points []RoutePoint, distanceKm float64, durationMin int) error {
	var set []error
	for i, point := range points {
		if err := point.Validate(); err != nil {
			set = append(set, err)
			continue
		}
		if point.Sequence() != i {
			set = append(set, errs.NewValueIsInvalidError("points are not in contiguous sequence order"))
		}
	}
	if distanceKm < 0 {
		set = append(set, errs.NewValueIsInvalidError("distanceKm is invalid"))
	}
	if durationMin < 0 {
		set = append(set, errs.NewValueIsInvalidError("durationMin is invalid"))
	}
	if err := errors.Join(set...); err != nil {
		return err
	}

	s.points = slices.Clone(points)
	s.distanceKm = distanceKm
	s.durationMin = durationMin
	return nil
}

// Reset clears the stage back to the not-optimized state.
func (s *RouteStage) Reset() {
	s.points = nil
	s.distanceKm = 0
	s.durationMin = 0
}

// IsOptimized reports whether an optimization result is present.
func (s *RouteStage) IsOptimized() bool {
	return len(s.points) > 0
}

// Points returns a copy of the optimized visiting order, empty when not
// optimized.
func (s *RouteStage) Points() []RoutePoint {
	return slices.Clone(s.points)
}

// DistanceKm returns the total route distance of the current result.
func (s *RouteStage) DistanceKm() float64 {
	return s.distanceKm
}

// DurationMin returns the estimated travel time of the current result in
// minutes.
func (s *RouteStage) DurationMin() int {
	return s.durationMin
}
