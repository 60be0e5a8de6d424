package stop

import (
	"errors"
	"fmt"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/pkg/errs"
	"batching/internal/pkg/guard"
)

// ErrStopIsNotConstructed is returned when using a Stop that was not created
// through the NewStop or RestoreStop constructor functions.
var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

// Stop represents a single delivery stop in a working set: one facility to be
// visited, together with the source requisitions folded into it and the
// physical load it places on the vehicle.
//
// Key invariants:
//   - facilityID must be a valid UUID and is the stop's identity within a working set
//   - facilityName must be non-empty
//   - slotDemand is a non-negative count of vehicle slots required
//   - weightKg and volumeM3 are optional non-negative load figures
//   - sequence is owned by the enclosing WorkingSet and always equals the
//     stop's 0-based position in list order
//
// Facility code, LGA, and zone are optional display attributes carried through
// from the facility directory.
type Stop struct {
	// facilityID uniquely identifies the facility this stop visits
	facilityID kernel.UUID

	// facilityName is the human-readable facility name, denormalized for display
	facilityName string

	// facilityCode is the optional short code of the facility
	facilityCode string

	// lga is the optional local government area of the facility
	lga string

	// zone is the optional distribution zone of the facility
	zone string

	// requisitionIDs are the source-document identifiers folded into this stop
	requisitionIDs []string

	// slotDemand is the number of vehicle slots this stop requires
	slotDemand int

	// weightKg is the optional total weight of the stop's consignment
	weightKg float64

	// volumeM3 is the optional total volume of the stop's consignment
	volumeM3 float64

	// sequence is the 0-based position within the working set
	sequence int

	// guard ensures the stop was properly constructed
	guard guard.ConstructorGuard
}

// NewStop creates a delivery stop for the given facility.
//
// Parameters:
//   - facilityID: Unique identifier of the facility (must be a valid UUID)
//   - facilityName: Human-readable facility name (must be non-empty)
//   - requisitionIDs: Source requisitions folded into this stop (may be empty)
//   - slotDemand: Number of vehicle slots required (must be >= 0)
//
// Optional attributes (code, LGA, zone, weight, volume) default to empty and
// can be supplied through RestoreStop when the full facility record is known.
func NewStop(
	facilityID kernel.UUID,
	facilityName string,
	requisitionIDs []string,
	slotDemand int,
) (*Stop, error) {
	s := &Stop{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setFacilityID(facilityID),
		s.setFacilityName(facilityName),
		s.setSlotDemand(slotDemand),
	); err != nil {
		return nil, err
	}

	s.setRequisitionIDs(requisitionIDs)
	return s, nil
}

// RestoreStop reconstructs a Stop with its full attribute set, typically from
// a persisted draft or from a facility directory record. Unlike NewStop it
// accepts every optional attribute.
func RestoreStop(
	facilityID kernel.UUID,
	facilityName string,
	facilityCode string,
	lga string,
	zone string,
	requisitionIDs []string,
	slotDemand int,
	weightKg float64,
	volumeM3 float64,
) (*Stop, error) {
	s := &Stop{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setFacilityID(facilityID),
		s.setFacilityName(facilityName),
		s.setSlotDemand(slotDemand),
		s.setWeightKg(weightKg),
		s.setVolumeM3(volumeM3),
	); err != nil {
		return nil, err
	}

	s.facilityCode = facilityCode
	s.lga = lga
	s.zone = zone
	s.setRequisitionIDs(requisitionIDs)
	return s, nil
}

// Validate ensures the Stop was properly constructed.
func (s *Stop) Validate() error {
	if s == nil {
		return ErrStopIsNotConstructed
	}
	return s.guard.Validate(ErrStopIsNotConstructed)
}

// IsEqual compares two stops by facility identity.
func (s *Stop) IsEqual(other *Stop) bool {
	return other != nil && s.facilityID.IsEqual(other.facilityID)
}

// FacilityID returns the identity of the facility this stop visits.
func (s *Stop) FacilityID() kernel.UUID {
	return s.facilityID
}

// FacilityName returns the facility's display name.
func (s *Stop) FacilityName() string {
	return s.facilityName
}

// FacilityCode returns the optional facility short code, empty if unknown.
func (s *Stop) FacilityCode() string {
	return s.facilityCode
}

// LGA returns the optional local government area, empty if unknown.
func (s *Stop) LGA() string {
	return s.lga
}

// Zone returns the optional distribution zone, empty if unknown.
func (s *Stop) Zone() string {
	return s.zone
}

// RequisitionIDs returns the source requisitions folded into this stop.
// The returned slice is a copy to prevent external modification.
func (s *Stop) RequisitionIDs() []string {
	out := make([]string, len(s.requisitionIDs))
	copy(out, s.requisitionIDs)
	return out
}

// SlotDemand returns the number of vehicle slots this stop requires.
func (s *Stop) SlotDemand() int {
	return s.slotDemand
}

// WeightKg returns the stop's consignment weight, 0 if unknown.
func (s *Stop) WeightKg() float64 {
	return s.weightKg
}

// VolumeM3 returns the stop's consignment volume, 0 if unknown.
func (s *Stop) VolumeM3() float64 {
	return s.volumeM3
}

// Sequence returns the stop's 0-based position within its working set.
// The value is maintained by the WorkingSet and always matches list order.
func (s *Stop) Sequence() int {
	return s.sequence
}

// setSequence is called by the WorkingSet when renumbering.
func (s *Stop) setSequence(sequence int) {
	s.sequence = sequence
}

func (s *Stop) setFacilityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.facilityID = id
	return nil
}

func (s *Stop) setFacilityName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("facilityName is required")
	}

	s.facilityName = name
	return nil
}

func (s *Stop) setSlotDemand(slotDemand int) error {
	if slotDemand < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"slotDemand is invalid",
			fmt.Errorf("%d is negative", slotDemand),
		)
	}

	s.slotDemand = slotDemand
	return nil
}

func (s *Stop) setWeightKg(weightKg float64) error {
	if weightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightKg is invalid",
			fmt.Errorf("%f is negative", weightKg),
		)
	}

	s.weightKg = weightKg
	return nil
}

func (s *Stop) setVolumeM3(volumeM3 float64) error {
	if volumeM3 < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"volumeM3 is invalid",
			fmt.Errorf("%f is negative", volumeM3),
		)
	}

	s.volumeM3 = volumeM3
	return nil
}

func (s *Stop) setRequisitionIDs(requisitionIDs []string) {
	s.requisitionIDs = make([]string, len(requisitionIDs))
	copy(s.requisitionIDs, requisitionIDs)
}
