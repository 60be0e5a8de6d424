package prebatch

import (
	"fmt"

	"batching/internal/pkg/errs"
)

// Status represents the lifecycle state of a persisted draft.
// It implements a state machine with defined transitions to ensure
// drafts follow the correct business workflow.
//
// State transitions:
//
//	Draft ──┬──> Converted
//	        │
//	        └──> Expired
//
// Both Converted and Expired are final states.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status of a saved, resumable draft.
	StatusDraft

	// StatusConverted indicates the draft was committed into a batch.
	StatusConverted

	// StatusExpired indicates the draft outlived its retention window and
	// was swept. Expired drafts can no longer be resumed or converted.
	StatusExpired
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusDraft:     "Draft",
		StatusConverted: "Converted",
		StatusExpired:   "Expired",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:     "Draft",
		StatusConverted: "Converted",
		StatusExpired:   "Expired",
	}
}

// StatusFromString converts a persisted status string back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateConvert checks if the status allows conversion into a batch
// without performing the transition. Only drafts can be converted.
func (s Status) ValidateConvert() error {
	if s != StatusDraft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to convert", s.String()),
		)
	}
	return nil
}

// ValidateExpire checks if the status allows expiry without performing the
// transition. Only drafts can expire.
func (s Status) ValidateExpire() error {
	if s != StatusDraft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to expire", s.String()),
		)
	}
	return nil
}
