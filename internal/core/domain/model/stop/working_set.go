package stop

import (
	"batching/internal/core/domain/model/kernel"
	"batching/internal/pkg/errs"
)

// Totals holds the aggregate figures derived from a working set.
// Totals are recomputed on every read and never stored.
type Totals struct {
	// Stops is the number of stops in the working set.
	Stops int
	// SlotDemand is the sum of slot demands across all stops.
	SlotDemand int
	// WeightKg is the sum of consignment weights across all stops.
	WeightKg float64
	// VolumeM3 is the sum of consignment volumes across all stops.
	VolumeM3 float64
}

// WorkingSet is the ordered, mutable collection of delivery stops chosen for a
// batch. It enforces two structural invariants on every mutation:
//   - a facility appears at most once in the set
//   - sequence values form a contiguous 0..n-1 permutation matching list order
//
// Adding a facility already present is a silent no-op so that bulk "add all"
// operations stay idempotent.
type WorkingSet struct {
	items []*Stop
}

// NewWorkingSet creates an empty working set.
func NewWorkingSet() *WorkingSet {
	return &WorkingSet{
		items: make([]*Stop, 0),
	}
}

// Add appends a stop to the end of the set and assigns its sequence.
// Returns false without mutating the set when the stop is invalid or the
// facility is already present (duplicate adds are silent no-ops).
func (w *WorkingSet) Add(s *Stop) bool {
	if s == nil || s.Validate() != nil {
		return false
	}

	if w.Contains(s.FacilityID()) {
		return false
	}

	s.setSequence(len(w.items))
	w.items = append(w.items, s)
	return true
}

// Remove deletes the stop for the given facility and renumbers the remaining
// stops so sequences stay contiguous. Returns false if the facility is absent.
func (w *WorkingSet) Remove(facilityID kernel.UUID) bool {
	for i, item := range w.items {
		if item.FacilityID().IsEqual(facilityID) {
			w.items = append(w.items[:i], w.items[i+1:]...)
			w.renumber()
			return true
		}
	}

	return false
}

// Reorder moves the stop at fromIndex to toIndex and renumbers all sequences.
// A move onto itself is a no-op. Indices outside [0, len) are rejected with an
// out-of-range error and the set is left untouched.
func (w *WorkingSet) Reorder(fromIndex int, toIndex int) error {
	if fromIndex < 0 || fromIndex >= len(w.items) {
		return errs.NewValueIsOutOfRangeError("fromIndex", fromIndex, 0, len(w.items)-1)
	}
	if toIndex < 0 || toIndex >= len(w.items) {
		return errs.NewValueIsOutOfRangeError("toIndex", toIndex, 0, len(w.items)-1)
	}
	if fromIndex == toIndex {
		return nil
	}

	moved := w.items[fromIndex]
	w.items = append(w.items[:fromIndex], w.items[fromIndex+1:]...)

	rest := make([]*Stop, 0, len(w.items)+1)
	rest = append(rest, w.items[:toIndex]...)
	rest = append(rest, moved)
	rest = append(rest, w.items[toIndex:]...)
	w.items = rest

	w.renumber()
	return nil
}

// Clear empties the working set.
// Callers owning slot assignments must drop assignments for the removed
// facilities in the same logical transaction; WorkflowSession does this.
func (w *WorkingSet) Clear() {
	w.items = make([]*Stop, 0)
}

// Items returns the stops in list order.
// The returned slice is a copy to prevent external modification.
func (w *WorkingSet) Items() []*Stop {
	out := make([]*Stop, len(w.items))
	copy(out, w.items)
	return out
}

// Len returns the number of stops in the set.
func (w *WorkingSet) Len() int {
	return len(w.items)
}

// Contains reports whether the facility is present in the set.
func (w *WorkingSet) Contains(facilityID kernel.UUID) bool {
	_, ok := w.Get(facilityID)
	return ok
}

// Get returns the stop for the given facility, if present.
func (w *WorkingSet) Get(facilityID kernel.UUID) (*Stop, bool) {
	for _, item := range w.items {
		if item.FacilityID().IsEqual(facilityID) {
			return item, true
		}
	}

	return nil, false
}

// FacilityIDs returns the facility identities in list order.
func (w *WorkingSet) FacilityIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(w.items))
	for i, item := range w.items {
		out[i] = item.FacilityID()
	}
	return out
}

// Totals computes the aggregate stop count, slot demand, weight, and volume.
// The figures are derived on read; mutations never cache them.
func (w *WorkingSet) Totals() Totals {
	totals := Totals{Stops: len(w.items)}
	for _, item := range w.items {
		totals.SlotDemand += item.SlotDemand()
		totals.WeightKg += item.WeightKg()
		totals.VolumeM3 += item.VolumeM3()
	}
	return totals
}

// renumber reassigns contiguous 0-based sequences in list order.
func (w *WorkingSet) renumber() {
	for i, item := range w.items {
		item.setSequence(i)
	}
}
