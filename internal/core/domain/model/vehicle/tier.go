package vehicle

import (
	"errors"
	"fmt"

	"batching/internal/pkg/errs"
	"batching/internal/pkg/guard"
)

// ErrTierIsNotConstructed is returned when using a Tier that was not created
// through the NewTier constructor function.
var ErrTierIsNotConstructed = errors.New("Tier must be created via NewTier constructor")

// Tier represents one named capacity partition of a vehicle's storage layout,
// such as a shelf level. A tier exposes a fixed number of addressable slots
// and optional weight/volume ceilings.
//
// Tier is an immutable value object. Tiers within a layout are ordered by
// their order key, which must be unique per layout.
type Tier struct { //nolint:recvcheck //using for validation
	// name identifies the tier within the vehicle layout
	name string

	// order is the strict ascending sort key within the layout
	order int

	// slotCount is the number of slots this tier exposes, addressed 1..slotCount
	slotCount int

	// capacityKg is the optional weight ceiling, 0 if unspecified
	capacityKg float64

	// capacityM3 is the optional volume ceiling, 0 if unspecified
	capacityM3 float64

	// guard ensures the tier was properly constructed
	guard guard.ConstructorGuard
}

// NewTier creates a tier with the given name, sort order, and slot count.
// Capacity ceilings are optional; pass 0 when unspecified.
func NewTier(name string, order int, slotCount int, capacityKg float64, capacityM3 float64) (Tier, error) {
	tier := Tier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tier.setName(name),
		tier.setSlotCount(slotCount),
		tier.setCapacityKg(capacityKg),
		tier.setCapacityM3(capacityM3),
	); err != nil {
		return Tier{}, err
	}

	tier.order = order
	return tier, nil
}

// Validate ensures the Tier was created via NewTier.
func (t Tier) Validate() error {
	return t.guard.Validate(ErrTierIsNotConstructed)
}

// Name returns the tier's name.
func (t Tier) Name() string {
	return t.name
}

// Order returns the tier's sort key within the layout.
func (t Tier) Order() int {
	return t.order
}

// SlotCount returns the number of slots this tier exposes.
func (t Tier) SlotCount() int {
	return t.slotCount
}

// CapacityKg returns the optional weight ceiling, 0 if unspecified.
func (t Tier) CapacityKg() float64 {
	return t.capacityKg
}

// CapacityM3 returns the optional volume ceiling, 0 if unspecified.
func (t Tier) CapacityM3() float64 {
	return t.capacityM3
}

func (t *Tier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	t.name = name
	return nil
}

func (t *Tier) setSlotCount(slotCount int) error {
	if slotCount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"slotCount is invalid",
			fmt.Errorf("%d is not greater than 0", slotCount),
		)
	}

	t.slotCount = slotCount
	return nil
}

func (t *Tier) setCapacityKg(capacityKg float64) error {
	if capacityKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacityKg is invalid",
			fmt.Errorf("%f is negative", capacityKg),
		)
	}

	t.capacityKg = capacityKg
	return nil
}

func (t *Tier) setCapacityM3(capacityM3 float64) error {
	if capacityM3 < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacityM3 is invalid",
			fmt.Errorf("%f is negative", capacityM3),
		)
	}

	t.capacityM3 = capacityM3
	return nil
}
