package services

import (
	"errors"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/prebatch"
	"batching/internal/core/domain/model/session"
)

// SourceSubOptionAIGeneration is the source sub-option whose drafts carry
// the optimizer toggles. All other sub-options save a draft without them.
const SourceSubOptionAIGeneration = "ai_generation"

// ErrSessionNotReadyForDraft is returned when assembling a draft from a
// session that has not reached the schedule step's minimum state.
var ErrSessionNotReadyForDraft = errors.New("session is not ready to be saved as a draft")

// DraftAssembler is a domain service that converts between a live
// WorkflowSession and the persisted PreBatch draft form.
//
// Key responsibilities:
//   - Packaging the save-draft payload from a session snapshot
//   - Rebuilding a session from a stored draft at its saved step
//
// Business rules:
//   - Optimizer toggles are persisted only for AI-driven drafts
//   - Resuming bypasses the step gate (trusted programmatic entry)
type DraftAssembler struct{}

// NewDraftAssembler creates a new DraftAssembler instance.
func NewDraftAssembler() DraftAssembler {
	return DraftAssembler{}
}

// AssembleDraft packages the session's current state into a PreBatch with
// the given identity. The session itself is not mutated; the caller records
// the draft identity on the session only after a successful save.
func (a DraftAssembler) AssembleDraft(id kernel.UUID, sess *session.WorkflowSession) (*prebatch.PreBatch, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	if sess.SourceMethod() == "" || sess.ScheduleTitle() == "" {
		return nil, ErrSessionNotReadyForDraft
	}

	draft, err := prebatch.NewPreBatch(
		id,
		sess.SourceMethod(),
		sess.ScheduleTitle(),
		sess.PlannedDate(),
		sess.WorkingSet().Items(),
		int(sess.CurrentStep()),
	)
	if err != nil {
		return nil, err
	}

	draft.
		WithSourceSubOption(sess.SourceSubOption()).
		WithStartLocation(sess.StartLocationID(), sess.StartLocationType()).
		WithTimeWindow(sess.TimeWindow()).
		WithSuggestedVehicle(sess.SuggestedVehicleID()).
		WithNotes(sess.Notes())

	if sess.SourceSubOption() == SourceSubOptionAIGeneration {
		options := sess.AIOptions()
		draft.WithAIOptions(&prebatch.AIOptions{
			MinimizeDistance:    options.MinimizeDistance,
			ConsiderTraffic:     options.ConsiderTraffic,
			PrioritizeColdChain: options.PrioritizeColdChain,
			BalanceLoad:         options.BalanceLoad,
		})
	}

	return draft, nil
}

// ResumeSession builds a fresh WorkflowSession with the given identity from
// a stored draft, positioned at the draft's saved step.
func (a DraftAssembler) ResumeSession(sessionID kernel.UUID, draft *prebatch.PreBatch) (*session.WorkflowSession, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	savedStep, err := session.StepFromInt(draft.SavedStep())
	if err != nil {
		return nil, err
	}

	sess, err := session.NewWorkflowSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.SetSourceMethod(draft.SourceMethod())
	sess.SetSourceSubOption(draft.SourceSubOption())
	sess.SetScheduleTitle(draft.ScheduleTitle())
	sess.SetStartLocation(draft.StartLocationID(), draft.StartLocationType())
	sess.SetPlannedDate(draft.PlannedDate())
	sess.SetTimeWindow(draft.TimeWindow())
	sess.SetSuggestedVehicle(draft.SuggestedVehicleID())
	sess.SetNotes(draft.Notes())
	sess.SetPreBatchID(draft.ID())

	for _, item := range draft.Stops() {
		sess.AddToWorkingSet(item)
	}

	if options := draft.AIOptions(); options != nil {
		sess.SetAIOptimizationOptions(session.AIOptimizationOptionsPatch{
			MinimizeDistance:    &options.MinimizeDistance,
			ConsiderTraffic:     &options.ConsiderTraffic,
			PrioritizeColdChain: &options.PrioritizeColdChain,
			BalanceLoad:         &options.BalanceLoad,
		})
	}

	if err = sess.GoToStep(savedStep); err != nil {
		return nil, err
	}

	return sess, nil
}
