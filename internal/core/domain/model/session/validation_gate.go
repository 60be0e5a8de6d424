package session

// SourceMethodReady is the source method whose sub-option must also be
// chosen before the first step is complete.
const SourceMethodReady = "ready"

// CanProceed reports whether the given step's minimum requirements are met
// by the session. It is a pure function of the session fields and never
// mutates state.
//
// Per-step contract:
//   - SourceSelection: a source method, plus a sub-option when the method
//     is "ready"
//   - Schedule: title, start location, planned date, and a non-empty
//     working set
//   - Vehicle: batch name and a committed vehicle
//   - Route: nothing (optimization is optional)
//   - Review: same as Vehicle
func CanProceed(s *WorkflowSession, step Step) bool {
	if s == nil {
		return false
	}

	switch step {
	case StepSourceSelection:
		if s.sourceMethod == "" {
			return false
		}
		if s.sourceMethod == SourceMethodReady && s.sourceSubOption == "" {
			return false
		}
		return true

	case StepSchedule:
		return s.scheduleTitle != "" &&
			s.startLocationID.Validate() == nil &&
			!s.plannedDate.IsZero() &&
			s.workingSet.Len() > 0

	case StepVehicle, StepReview:
		return s.batchName != "" && s.vehicleID.Validate() == nil

	case StepRoute:
		return true

	default:
		return false
	}
}
