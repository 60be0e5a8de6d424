package vehicle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSlotKey indicates that a slot key does not parse to, or does not
// address, an existing tier and slot number in the vehicle layout.
var ErrInvalidSlotKey = errors.New("invalid slot key")

// SlotKey addresses one slot in a vehicle's tiered layout.
// Its string form is "<tier_name>-<slot_number>", e.g. "Upper-3".
// Slot numbers are 1-based.
type SlotKey struct {
	tierName   string
	slotNumber int
}

// NewSlotKey creates a slot key from a tier name and 1-based slot number.
// The key addresses a position syntactically; whether that position exists in
// a particular layout is checked by the SlotBoard.
func NewSlotKey(tierName string, slotNumber int) (SlotKey, error) {
	if tierName == "" {
		return SlotKey{}, fmt.Errorf("%w: empty tier name", ErrInvalidSlotKey)
	}
	if slotNumber < 1 {
		return SlotKey{}, fmt.Errorf("%w: slot number %d is not positive", ErrInvalidSlotKey, slotNumber)
	}

	return SlotKey{tierName: tierName, slotNumber: slotNumber}, nil
}

// ParseSlotKey parses the "<tier_name>-<slot_number>" string form.
// Tier names may themselves contain dashes, so the split happens at the last
// dash. Returns ErrInvalidSlotKey when the string does not parse.
func ParseSlotKey(s string) (SlotKey, error) {
	idx := strings.LastIndex(s, "-")
	if idx <= 0 || idx == len(s)-1 {
		return SlotKey{}, fmt.Errorf("%w: %q", ErrInvalidSlotKey, s)
	}

	number, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return SlotKey{}, fmt.Errorf("%w: %q", ErrInvalidSlotKey, s)
	}

	return NewSlotKey(s[:idx], number)
}

// TierName returns the tier component of the key.
func (k SlotKey) TierName() string {
	return k.tierName
}

// SlotNumber returns the 1-based slot number component of the key.
func (k SlotKey) SlotNumber() int {
	return k.slotNumber
}

// String returns the canonical "<tier_name>-<slot_number>" form.
func (k SlotKey) String() string {
	return fmt.Sprintf("%s-%d", k.tierName, k.slotNumber)
}
