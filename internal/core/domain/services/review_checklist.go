package services

import (
	"batching/internal/core/domain/model/session"
)

// ChecklistItem is one line of the review screen: a requirement and whether
// the session currently satisfies it.
type ChecklistItem struct {
	Requirement string
	Satisfied   bool
	Blocking    bool
}

// ReviewChecklist is a domain service producing the step-5 review summary.
// Blocking items mirror the step gates; non-blocking items are informational
// (optimization and driver staffing are optional).
type ReviewChecklist struct{}

// NewReviewChecklist creates a new ReviewChecklist instance.
func NewReviewChecklist() ReviewChecklist {
	return ReviewChecklist{}
}

// Build evaluates the session against every requirement in workflow order.
func (c ReviewChecklist) Build(sess *session.WorkflowSession) []ChecklistItem {
	if sess == nil {
		return nil
	}

	subOptionOK := sess.SourceMethod() != session.SourceMethodReady || sess.SourceSubOption() != ""

	return []ChecklistItem{
		{"source method chosen", sess.SourceMethod() != "", true},
		{"source sub-option chosen", subOptionOK, true},
		{"schedule title set", sess.ScheduleTitle() != "", true},
		{"start location chosen", sess.StartLocationID().Validate() == nil, true},
		{"planned date set", !sess.PlannedDate().IsZero(), true},
		{"working set is not empty", sess.WorkingSet().Len() > 0, true},
		{"batch name set", sess.BatchName() != "", true},
		{"vehicle committed", sess.VehicleID().Validate() == nil, true},
		{"all facilities placed in slots", len(sess.SlotBoard().UnassignedFacilities(sess.WorkingSet())) == 0, false},
		{"route optimized", sess.RouteStage().IsOptimized(), false},
		{"driver assigned", sess.DriverID().Validate() == nil, false},
	}
}

// IsComplete reports whether every blocking requirement is satisfied.
func (c ReviewChecklist) IsComplete(sess *session.WorkflowSession) bool {
	for _, item := range c.Build(sess) {
		if item.Blocking && !item.Satisfied {
			return false
		}
	}
	return true
}
