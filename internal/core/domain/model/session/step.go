package session

import (
	"fmt"

	"batching/internal/pkg/errs"
)

// Step represents one screen of the five-step batch planning workflow.
// Steps form a total order and the session moves through them one at a
// time, gated by CanProceed.
//
//	SourceSelection -> Schedule -> Vehicle -> Route -> Review
type Step int

const (
	// StepUnknown represents an invalid or undefined step.
	// This value (0) helps catch uninitialized Step values.
	StepUnknown Step = iota

	// StepSourceSelection is the initial step: choosing where the batch's
	// stops come from.
	StepSourceSelection

	// StepSchedule captures the schedule: title, start location, planned
	// date, and the working set of stops. Drafts are saved at this step.
	StepSchedule

	// StepVehicle selects the vehicle and places facilities into its slots.
	StepVehicle

	// StepRoute runs the optional route optimization.
	StepRoute

	// StepReview is the final step where the batch is confirmed.
	StepReview
)

// getStepStrings returns a map of Step values to their string representations.
func getStepStrings() map[Step]string {
	return map[Step]string{
		StepUnknown:         "Unknown",
		StepSourceSelection: "SourceSelection",
		StepSchedule:        "Schedule",
		StepVehicle:         "Vehicle",
		StepRoute:           "Route",
		StepReview:          "Review",
	}
}

// getValidStepStrings returns a map of only valid Step values.
func getValidStepStrings() map[Step]string {
	//nolint:exhaustive // StepUnknown is intentionally excluded as it's invalid
	return map[Step]string{
		StepSourceSelection: "SourceSelection",
		StepSchedule:        "Schedule",
		StepVehicle:         "Vehicle",
		StepRoute:           "Route",
		StepReview:          "Review",
	}
}

// StepFromInt converts a persisted step number back into a Step.
// Used when resuming a draft at its saved step.
func StepFromInt(n int) (Step, error) {
	step := Step(n)
	if err := step.Validate(); err != nil {
		return StepUnknown, err
	}
	return step, nil
}

// Validate checks if the Step value is one of the five workflow steps.
func (s Step) Validate() error {
	if _, ok := getValidStepStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("step is invalid", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// String returns the human-readable name of the step.
// Returns "Unknown" for invalid step values.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFirst reports whether this is the initial step.
func (s Step) IsFirst() bool {
	return s == StepSourceSelection
}

// IsLast reports whether this is the final step.
func (s Step) IsLast() bool {
	return s == StepReview
}
