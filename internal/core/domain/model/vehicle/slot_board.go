package vehicle

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/stop"
	"batching/internal/pkg/errs"
	"batching/internal/pkg/guard"
)

// ErrSlotBoardIsNotConstructed is returned when using a SlotBoard that was not
// created through the NewSlotBoard constructor function.
var ErrSlotBoardIsNotConstructed = errors.New("SlotBoard must be created via NewSlotBoard constructor")

// SlotAssignment is the occupant of one slot: the facility placed there and
// the requisitions it carries.
type SlotAssignment struct {
	facilityID     kernel.UUID
	facilityName   string
	requisitionIDs []string
}

// FacilityID returns the identity of the assigned facility.
func (a SlotAssignment) FacilityID() kernel.UUID {
	return a.facilityID
}

// FacilityName returns the display name of the assigned facility.
func (a SlotAssignment) FacilityName() string {
	return a.facilityName
}

// RequisitionIDs returns a copy of the requisition identifiers loaded into
// the slot.
func (a SlotAssignment) RequisitionIDs() []string {
	return slices.Clone(a.requisitionIDs)
}

// SlotBoard maps a vehicle's tiered slot layout to working-set facilities.
// It supports manual placement plus a deterministic first-fit automatic fill.
//
// All operations are synchronous in-memory mutations. The only observable
// error is ErrInvalidSlotKey for keys that do not address a slot in the
// layout. A facility occupies at most one slot at a time; assigning a placed
// facility elsewhere moves it.
type SlotBoard struct {
	// tiers is the vehicle layout, sorted ascending by order
	tiers []Tier

	// assignments maps canonical slot key strings to their occupants
	assignments map[string]SlotAssignment

	// guard ensures the board was properly constructed
	guard guard.ConstructorGuard
}

// NewSlotBoard creates a board over the given tier layout. Tiers are sorted
// by their order key; names and order keys must be unique. An empty layout is
// valid and yields a board with zero slots.
func NewSlotBoard(tiers []Tier) (*SlotBoard, error) {
	sorted := slices.Clone(tiers)

	var set []error
	names := make(map[string]bool, len(sorted))
	orders := make(map[int]bool, len(sorted))
	for _, tier := range sorted {
		if err := tier.Validate(); err != nil {
			set = append(set, err)
			continue
		}
		if names[tier.Name()] {
			set = append(set, errs.NewValueIsInvalidErrorWithCause(
				"tiers is invalid",
				fmt.Errorf("duplicate tier name %q", tier.Name()),
			))
		}
		if orders[tier.Order()] {
			set = append(set, errs.NewValueIsInvalidErrorWithCause(
				"tiers is invalid",
				fmt.Errorf("duplicate tier order %d", tier.Order()),
			))
		}
		names[tier.Name()] = true
		orders[tier.Order()] = true
	}
	if err := errors.Join(set...); err != nil {
		return nil, err
	}

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})

	return &SlotBoard{
		tiers:       sorted,
		assignments: make(map[string]SlotAssignment),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the SlotBoard was created via NewSlotBoard.
func (b *SlotBoard) Validate() error {
	if b == nil {
		return ErrSlotBoardIsNotConstructed
	}

	return b.guard.Validate(ErrSlotBoardIsNotConstructed)
}

// Tiers returns the layout, sorted ascending by order.
func (b *SlotBoard) Tiers() []Tier {
	return slices.Clone(b.tiers)
}

// Assign places a facility into the slot addressed by key, overwriting any
// current occupant. If the facility already holds another slot it is moved.
// Returns ErrInvalidSlotKey when the key does not address a slot in the
// layout.
func (b *SlotBoard) Assign(key SlotKey, facilityID kernel.UUID, facilityName string, requisitionIDs []string) error {
	if !b.containsSlot(key) {
		return fmt.Errorf("%w: %q does not address a slot in the layout", ErrInvalidSlotKey, key.String())
	}

	b.dropFacility(facilityID)
	b.assignments[key.String()] = SlotAssignment{
		facilityID:     facilityID,
		facilityName:   facilityName,
		requisitionIDs: slices.Clone(requisitionIDs),
	}
	return nil
}

// Unassign empties the slot addressed by key. No-op when the slot is empty or
// the key is not part of the layout.
func (b *SlotBoard) Unassign(key SlotKey) {
	delete(b.assignments, key.String())
}

// AutoAssign fills empty slots with unassigned working-set facilities using a
// deterministic first-fit strategy: tiers in ascending order, slot numbers
// ascending within a tier, facilities in working-set order. It counts integer
// slot units only and ignores weight/volume ceilings. Re-invoking with
// nothing left to assign is a no-op.
func (b *SlotBoard) AutoAssign(ws *stop.WorkingSet) {
	if ws == nil {
		return
	}

	queue := b.UnassignedFacilities(ws)
	if len(queue) == 0 {
		return
	}

	next := 0
	for _, tier := range b.tiers {
		for number := 1; number <= tier.SlotCount(); number++ {
			if next >= len(queue) {
				return
			}

			key := SlotKey{tierName: tier.Name(), slotNumber: number}
			if _, occupied := b.assignments[key.String()]; occupied {
				continue
			}

			item := queue[next]
			b.assignments[key.String()] = SlotAssignment{
				facilityID:     item.FacilityID(),
				facilityName:   item.FacilityName(),
				requisitionIDs: item.RequisitionIDs(),
			}
			next++
		}
	}
}

// DropFacility removes every assignment referencing the facility. Callers
// must invoke it when a facility leaves the working set so the board never
// holds a dangling reference.
func (b *SlotBoard) DropFacility(facilityID kernel.UUID) {
	b.dropFacility(facilityID)
}

// Clear empties all assignments, keeping the layout.
func (b *SlotBoard) Clear() {
	b.assignments = make(map[string]SlotAssignment)
}

// AssignmentAt reports the occupant of the slot addressed by key.
func (b *SlotBoard) AssignmentAt(key SlotKey) (SlotAssignment, bool) {
	assignment, ok := b.assignments[key.String()]
	return assignment, ok
}

// Assignments returns a copy of the occupied slots keyed by canonical slot
// key string.
func (b *SlotBoard) Assignments() map[string]SlotAssignment {
	out := make(map[string]SlotAssignment, len(b.assignments))
	for key, assignment := range b.assignments {
		out[key] = assignment
	}
	return out
}

// TotalSlots returns the slot capacity of the layout.
func (b *SlotBoard) TotalSlots() int {
	total := 0
	for _, tier := range b.tiers {
		total += tier.SlotCount()
	}
	return total
}

// AssignedSlots returns the number of occupied slots.
func (b *SlotBoard) AssignedSlots() int {
	return len(b.assignments)
}

// UtilizationPct returns the occupied share of the layout as a whole
// percentage, capped at 100. A zero-slot layout reports 0.
func (b *SlotBoard) UtilizationPct() int {
	total := b.TotalSlots()
	if total == 0 {
		return 0
	}

	pct := int(math.Round(100 * float64(b.AssignedSlots()) / float64(total)))
	if pct > 100 {
		return 100
	}
	return pct
}

// IsOverflow reports whether more slots are occupied than the layout exposes.
func (b *SlotBoard) IsOverflow() bool {
	return b.AssignedSlots() > b.TotalSlots()
}

// UnassignedFacilities returns the working-set stops not yet placed in any
// slot, in working-set order.
func (b *SlotBoard) UnassignedFacilities(ws *stop.WorkingSet) []*stop.Stop {
	if ws == nil {
		return nil
	}

	placed := make(map[string]bool, len(b.assignments))
	for _, assignment := range b.assignments {
		placed[assignment.facilityID.String()] = true
	}

	var out []*stop.Stop
	for _, item := range ws.Items() {
		if !placed[item.FacilityID().String()] {
			out = append(out, item)
		}
	}
	return out
}

func (b *SlotBoard) containsSlot(key SlotKey) bool {
	for _, tier := range b.tiers {
		if tier.Name() == key.TierName() {
			return key.SlotNumber() >= 1 && key.SlotNumber() <= tier.SlotCount()
		}
	}
	return false
}

func (b *SlotBoard) dropFacility(facilityID kernel.UUID) {
	for key, assignment := range b.assignments {
		if assignment.facilityID.IsEqual(facilityID) {
			delete(b.assignments, key)
		}
	}
}
