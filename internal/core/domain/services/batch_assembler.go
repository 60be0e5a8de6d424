package services

import (
	"errors"
	"sort"

	"batching/internal/core/domain/model/batch"
	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/session"
)

// ErrSessionNotReadyForCommit is returned when assembling a batch from a
// session missing the commit payload's required fields.
var ErrSessionNotReadyForCommit = errors.New("session is not ready to be committed")

// BatchAssembler is a domain service that packages a WorkflowSession's
// accumulated choices into the final Batch aggregate at commit time.
//
// Business rules:
//   - The session must hold a persisted draft identity, a batch name, and a
//     committed vehicle
//   - An unset priority defaults to medium
//   - Slot placements are ordered by slot key so the payload is
//     deterministic
type BatchAssembler struct{}

// NewBatchAssembler creates a new BatchAssembler instance.
func NewBatchAssembler() BatchAssembler {
	return BatchAssembler{}
}

// AssembleBatch packages the commit payload into a Batch with the given
// identity. The session is not mutated; the caller resets it only after the
// commit succeeds.
func (a BatchAssembler) AssembleBatch(id kernel.UUID, sess *session.WorkflowSession) (*batch.Batch, error) {
	if err := sess.Validate(); err != nil {
		return nil, err
	}
	if sess.PreBatchID().Validate() != nil ||
		sess.BatchName() == "" ||
		sess.VehicleID().Validate() != nil {
		return nil, ErrSessionNotReadyForCommit
	}

	priority := batch.PriorityMedium
	if sess.Priority() != "" {
		parsed, err := batch.PriorityFromString(sess.Priority())
		if err != nil {
			return nil, err
		}
		priority = parsed
	}

	placements, err := a.collectPlacements(sess)
	if err != nil {
		return nil, err
	}

	stage := sess.RouteStage()
	return batch.NewBatch(
		id,
		sess.PreBatchID(),
		sess.BatchName(),
		sess.VehicleID(),
		sess.DriverID(),
		priority,
		placements,
		stage.Points(),
		stage.DistanceKm(),
		stage.DurationMin(),
		sess.Notes(),
	)
}

func (a BatchAssembler) collectPlacements(sess *session.WorkflowSession) ([]batch.SlotPlacement, error) {
	assignments := sess.SlotBoard().Assignments()

	keys := make([]string, 0, len(assignments))
	for key := range assignments {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	placements := make([]batch.SlotPlacement, 0, len(keys))
	for _, key := range keys {
		assignment := assignments[key]
		placement, err := batch.NewSlotPlacement(
			key,
			assignment.FacilityID(),
			assignment.FacilityName(),
			assignment.RequisitionIDs(),
		)
		if err != nil {
			return nil, err
		}
		placements = append(placements, placement)
	}

	return placements, nil
}
