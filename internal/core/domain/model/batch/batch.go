package batch

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/route"
	"batching/internal/core/domain/model/vehicle"
	"batching/internal/pkg/errs"
	"batching/internal/pkg/guard"
)

// Domain errors for batch operations.
var (
	// ErrBatchIsNotConstructed is returned when using an improperly
	// initialized Batch.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch or RestoreBatch constructor")
	// ErrSlotPlacementIsNotConstructed is returned when using an improperly
	// initialized SlotPlacement.
	ErrSlotPlacementIsNotConstructed = errors.New("SlotPlacement must be created via NewSlotPlacement constructor")
)

// SlotPlacement is the persisted form of one slot assignment: the slot key
// plus the facility that occupies it.
type SlotPlacement struct { //nolint:recvcheck //using for validation
	slotKey        string
	facilityID     kernel.UUID
	facilityName   string
	requisitionIDs []string

	guard guard.ConstructorGuard
}

// NewSlotPlacement creates a placement for the given slot key and facility.
// The key must parse to the "<tier>-<n>" form.
func NewSlotPlacement(slotKey string, facilityID kernel.UUID, facilityName string, requisitionIDs []string) (SlotPlacement, error) {
	if _, err := vehicle.ParseSlotKey(slotKey); err != nil {
		return SlotPlacement{}, err
	}
	if err := facilityID.Validate(); err != nil {
		return SlotPlacement{}, err
	}
	if facilityName == "" {
		return SlotPlacement{}, errs.NewValueIsRequiredError("facilityName is required")
	}

	return SlotPlacement{
		slotKey:        slotKey,
		facilityID:     facilityID,
		facilityName:   facilityName,
		requisitionIDs: slices.Clone(requisitionIDs),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the SlotPlacement was created via NewSlotPlacement.
func (p SlotPlacement) Validate() error {
	return p.guard.Validate(ErrSlotPlacementIsNotConstructed)
}

// SlotKey returns the canonical slot key string.
func (p SlotPlacement) SlotKey() string {
	return p.slotKey
}

// FacilityID returns the occupying facility's identity.
func (p SlotPlacement) FacilityID() kernel.UUID {
	return p.facilityID
}

// FacilityName returns the occupying facility's display name.
func (p SlotPlacement) FacilityName() string {
	return p.facilityName
}

// RequisitionIDs returns a copy of the requisitions loaded into the slot.
func (p SlotPlacement) RequisitionIDs() []string {
	return slices.Clone(p.requisitionIDs)
}

// Batch is the finalized delivery batch produced by committing a draft: the
// vehicle, driver, slot placements, and optimized route frozen at commit
// time. Batches are immutable once created.
type Batch struct {
	// id uniquely identifies the batch
	id kernel.UUID

	// preBatchID links back to the converted draft
	preBatchID kernel.UUID

	// name is the user-chosen batch name
	name string

	// vehicleID and driverID are the committed transport choices
	vehicleID kernel.UUID
	driverID  kernel.UUID

	// priority is the delivery urgency
	priority Priority

	// placements is the slot layout frozen at commit time
	placements []SlotPlacement

	// routePoints is the optimized visiting order, empty when the batch was
	// committed without optimization
	routePoints []route.RoutePoint

	totalDistanceKm      float64
	estimatedDurationMin int

	notes string

	createdAt time.Time

	// guard ensures the batch was properly constructed
	guard guard.ConstructorGuard
}

// NewBatch creates a batch from the commit payload.
func NewBatch(
	id kernel.UUID,
	preBatchID kernel.UUID,
	name string,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	priority Priority,
	placements []SlotPlacement,
	routePoints []route.RoutePoint,
	totalDistanceKm float64,
	estimatedDurationMin int,
	notes string,
) (*Batch, error) {
	b := &Batch{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setPreBatchID(preBatchID),
		b.setName(name),
		b.setVehicleID(vehicleID),
		b.setPriority(priority),
		b.setPlacements(placements),
		b.setRoutePoints(routePoints),
		b.setTotals(totalDistanceKm, estimatedDurationMin),
	); err != nil {
		return nil, err
	}

	// The driver is optional at commit time; a dispatcher may staff the
	// batch later.
	b.driverID = driverID
	b.notes = notes
	return b, nil
}

// RestoreBatch reconstructs a batch from persistent storage.
func RestoreBatch(
	id kernel.UUID,
	preBatchID kernel.UUID,
	name string,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	priority Priority,
	placements []SlotPlacement,
	routePoints []route.RoutePoint,
	totalDistanceKm float64,
	estimatedDurationMin int,
	notes string,
	createdAt time.Time,
) (*Batch, error) {
	b, err := NewBatch(
		id, preBatchID, name, vehicleID, driverID, priority,
		placements, routePoints, totalDistanceKm, estimatedDurationMin, notes,
	)
	if err != nil {
		return nil, err
	}

	b.createdAt = createdAt
	return b, nil
}

// Validate ensures the Batch was created via a constructor function.
func (b *Batch) Validate() error {
	if b == nil {
		return ErrBatchIsNotConstructed
	}

	return b.guard.Validate(ErrBatchIsNotConstructed)
}

// IsEqual compares batches by identity.
func (b *Batch) IsEqual(other *Batch) bool {
	if other == nil {
		return false
	}

	return b.id.IsEqual(other.id)
}

// ID returns the batch identity.
func (b *Batch) ID() kernel.UUID {
	return b.id
}

// PreBatchID returns the identity of the converted draft.
func (b *Batch) PreBatchID() kernel.UUID {
	return b.preBatchID
}

// Name returns the batch name.
func (b *Batch) Name() string {
	return b.name
}

// VehicleID returns the committed vehicle identity.
func (b *Batch) VehicleID() kernel.UUID {
	return b.vehicleID
}

// DriverID returns the assigned driver identity, zero when unstaffed.
func (b *Batch) DriverID() kernel.UUID {
	return b.driverID
}

// Priority returns the delivery urgency.
func (b *Batch) Priority() Priority {
	return b.priority
}

// Placements returns a copy of the frozen slot layout.
func (b *Batch) Placements() []SlotPlacement {
	return slices.Clone(b.placements)
}

// RoutePoints returns a copy of the optimized visiting order, empty when the
// batch was committed without optimization.
func (b *Batch) RoutePoints() []route.RoutePoint {
	return slices.Clone(b.routePoints)
}

// TotalDistanceKm returns the optimized route distance, 0 when unoptimized.
func (b *Batch) TotalDistanceKm() float64 {
	return b.totalDistanceKm
}

// EstimatedDurationMin returns the optimized travel time in minutes, 0 when
// unoptimized.
func (b *Batch) EstimatedDurationMin() int {
	return b.estimatedDurationMin
}

// Notes returns the free-form notes.
func (b *Batch) Notes() string {
	return b.notes
}

// CreatedAt returns when the batch was committed.
func (b *Batch) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Batch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	b.id = id
	return nil
}

func (b *Batch) setPreBatchID(preBatchID kernel.UUID) error {
	if err := preBatchID.Validate(); err != nil {
		return err
	}

	b.preBatchID = preBatchID
	return nil
}

func (b *Batch) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	b.name = name
	return nil
}

func (b *Batch) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	b.vehicleID = vehicleID
	return nil
}

func (b *Batch) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	b.priority = priority
	return nil
}

func (b *Batch) setPlacements(placements []SlotPlacement) error {
	var set []error
	keys := make(map[string]bool, len(placements))
	for i, placement := range placements {
		if err := placement.Validate(); err != nil {
			set = append(set, fmt.Errorf("placement %d: %w", i, err))
			continue
		}
		if keys[placement.SlotKey()] {
			set = append(set, errs.NewValueIsInvalidErrorWithCause(
				"placements is invalid",
				fmt.Errorf("duplicate slot key %q", placement.SlotKey()),
			))
		}
		keys[placement.SlotKey()] = true
	}
	if err := errors.Join(set...); err != nil {
		return err
	}

	b.placements = slices.Clone(placements)
	return nil
}

func (b *Batch) setRoutePoints(routePoints []route.RoutePoint) error {
	var set []error
	for i, point := range routePoints {
		if err := point.Validate(); err != nil {
			set = append(set, fmt.Errorf("route point %d: %w", i, err))
		}
	}
	if err := errors.Join(set...); err != nil {
		return err
	}

	b.routePoints = slices.Clone(routePoints)
	return nil
}

func (b *Batch) setTotals(totalDistanceKm float64, estimatedDurationMin int) error {
	var set []error
	if totalDistanceKm < 0 {
		set = append(set, errs.NewValueIsInvalidError("totalDistanceKm is invalid"))
	}
	if estimatedDurationMin < 0 {
		set = append(set, errs.NewValueIsInvalidError("estimatedDurationMin is invalid"))
	}
	if err := errors.Join(set...); err != nil {
		return err
	}

	b.totalDistanceKm = totalDistanceKm
	b.estimatedDurationMin = estimatedDurationMin
	return nil
}
