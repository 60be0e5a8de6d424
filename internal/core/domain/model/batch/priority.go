package batch

import (
	"fmt"

	"batching/internal/pkg/errs"
)

// Priority represents the delivery urgency of a committed batch.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	// This value (0) helps catch uninitialized Priority values.
	PriorityUnknown Priority = iota

	// PriorityLow is for routine restocking runs.
	PriorityLow

	// PriorityMedium is the default urgency.
	PriorityMedium

	// PriorityHigh is for time-sensitive deliveries.
	PriorityHigh

	// PriorityUrgent is for emergency deliveries dispatched ahead of all
	// other work.
	PriorityUrgent
)

// getPriorityStrings returns a map of Priority values to their string representations.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		PriorityLow:     "low",
		PriorityMedium:  "medium",
		PriorityHigh:    "high",
		PriorityUrgent:  "urgent",
	}
}

// getValidPriorityStrings returns a map of only valid Priority values.
func getValidPriorityStrings() map[Priority]string {
	//nolint:exhaustive // PriorityUnknown is intentionally excluded as it's invalid
	return map[Priority]string{
		PriorityLow:    "low",
		PriorityMedium: "medium",
		PriorityHigh:   "high",
		PriorityUrgent: "urgent",
	}
}

// PriorityFromString converts a workflow or persisted priority string back
// into a Priority.
func PriorityFromString(s string) (Priority, error) {
	for priority, str := range getValidPriorityStrings() {
		if str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority is invalid",
		fmt.Errorf("%q is not a valid priority", s),
	)
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the wire form of the priority.
// Returns "Unknown" for invalid priority values.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
