package prebatch

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/stop"
	"batching/internal/pkg/errs"
	"batching/internal/pkg/guard"
)

const (
	// savedStepMin and savedStepMax bound the workflow step a draft can be
	// resumed at.
	savedStepMin = 1
	savedStepMax = 5
)

// ErrPreBatchIsNotConstructed is returned when using an improperly
// initialized PreBatch.
var ErrPreBatchIsNotConstructed = errors.New("PreBatch must be created via NewPreBatch or RestorePreBatch constructor")

// AIOptions is the persisted copy of the optimizer toggles a draft was saved
// with. It is present only when the draft's sub-option is AI-driven.
type AIOptions struct {
	MinimizeDistance    bool
	ConsiderTraffic     bool
	PrioritizeColdChain bool
	BalanceLoad         bool
}

// PreBatch is the draft aggregate: a workflow session persisted at the
// schedule step so the user can resume later. A draft carries the source
// selection, schedule fields, the ordered stops, and enough metadata to
// rebuild a session at its saved step.
//
// Lifecycle: saved as Draft, then either Converted (committed into a batch)
// or Expired (swept after the retention window). Both are final.
type PreBatch struct {
	// id uniquely identifies the draft
	id kernel.UUID

	// status is the lifecycle state
	status Status

	// sourceMethod and sourceSubOption mirror the session's source selection
	sourceMethod    string
	sourceSubOption string

	// schedule fields
	scheduleTitle     string
	startLocationID   kernel.UUID
	startLocationType string
	plannedDate       time.Time
	timeWindow        string

	// stops is the working set order at save time
	stops []*stop.Stop

	// aiOptions is nil unless the sub-option is AI-driven
	aiOptions *AIOptions

	// suggestedVehicleID is the recommendation captured at save time
	suggestedVehicleID kernel.UUID

	notes string

	// savedStep is the workflow step to resume at
	savedStep int

	createdAt time.Time
	updatedAt time.Time

	// guard ensures the draft was properly constructed
	guard guard.ConstructorGuard
}

// NewPreBatch creates a fresh draft from a session snapshot. Optional fields
// are recorded through the With* setters after construction.
func NewPreBatch(
	id kernel.UUID,
	sourceMethod string,
	scheduleTitle string,
	plannedDate time.Time,
	stops []*stop.Stop,
	savedStep int,
) (*PreBatch, error) {
	now := time.Now().UTC()

	preBatch := &PreBatch{
		status:    StatusDraft,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		preBatch.setID(id),
		preBatch.setSourceMethod(sourceMethod),
		preBatch.setScheduleTitle(scheduleTitle),
		preBatch.setStops(stops),
		preBatch.setSavedStep(savedStep),
	); err != nil {
		return nil, err
	}

	preBatch.plannedDate = plannedDate
	return preBatch, nil
}

// RestorePreBatch reconstructs a draft from persistent storage, bypassing
// the defaults NewPreBatch applies.
func RestorePreBatch(
	id kernel.UUID,
	status Status,
	sourceMethod string,
	scheduleTitle string,
	plannedDate time.Time,
	stops []*stop.Stop,
	savedStep int,
	createdAt time.Time,
	updatedAt time.Time,
) (*PreBatch, error) {
	preBatch := &PreBatch{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		preBatch.setID(id),
		status.Validate(),
		preBatch.setSourceMethod(sourceMethod),
		preBatch.setScheduleTitle(scheduleTitle),
		preBatch.setStops(stops),
		preBatch.setSavedStep(savedStep),
	); err != nil {
		return nil, err
	}

	preBatch.status = status
	preBatch.plannedDate = plannedDate
	preBatch.createdAt = createdAt
	preBatch.updatedAt = updatedAt
	return preBatch, nil
}

// Validate ensures the PreBatch was created via a constructor function.
func (p *PreBatch) Validate() error {
	if p == nil {
		return ErrPreBatchIsNotConstructed
	}

	return p.guard.Validate(ErrPreBatchIsNotConstructed)
}

// WithSourceSubOption records the sub-variant of the source method.
func (p *PreBatch) WithSourceSubOption(subOption string) *PreBatch {
	p.sourceSubOption = subOption
	return p
}

// WithStartLocation records the route's starting point.
func (p *PreBatch) WithStartLocation(id kernel.UUID, locationType string) *PreBatch {
	p.startLocationID = id
	p.startLocationType = locationType
	return p
}

// WithTimeWindow records the delivery time window.
func (p *PreBatch) WithTimeWindow(window string) *PreBatch {
	p.timeWindow = window
	return p
}

// WithAIOptions records the optimizer toggles for AI-driven drafts.
func (p *PreBatch) WithAIOptions(options *AIOptions) *PreBatch {
	p.aiOptions = options
	return p
}

// WithSuggestedVehicle records the vehicle recommendation.
func (p *PreBatch) WithSuggestedVehicle(vehicleID kernel.UUID) *PreBatch {
	p.suggestedVehicleID = vehicleID
	return p
}

// WithNotes records free-form notes.
func (p *PreBatch) WithNotes(notes string) *PreBatch {
	p.notes = notes
	return p
}

// Convert transitions the draft to Converted. Only drafts in the Draft
// status can be converted; the transition is final.
func (p *PreBatch) Convert() error {
	if err := p.status.ValidateConvert(); err != nil {
		return err
	}

	p.status = StatusConverted
	p.updatedAt = time.Now().UTC()
	return nil
}

// Expire transitions the draft to Expired. Only drafts in the Draft status
// can expire; the transition is final.
func (p *PreBatch) Expire() error {
	if err := p.status.ValidateExpire(); err != nil {
		return err
	}

	p.status = StatusExpired
	p.updatedAt = time.Now().UTC()
	return nil
}

// IsEqual compares drafts by identity.
func (p *PreBatch) IsEqual(other *PreBatch) bool {
	if other == nil {
		return false
	}

	return p.id.IsEqual(other.id)
}

// ID returns the draft identity.
func (p *PreBatch) ID() kernel.UUID {
	return p.id
}

// Status returns the lifecycle state.
func (p *PreBatch) Status() Status {
	return p.status
}

// SourceMethod returns how the batch's stops were sourced.
func (p *PreBatch) SourceMethod() string {
	return p.sourceMethod
}

// SourceSubOption returns the sub-variant of the source method.
func (p *PreBatch) SourceSubOption() string {
	return p.sourceSubOption
}

// ScheduleTitle returns the schedule title.
func (p *PreBatch) ScheduleTitle() string {
	return p.scheduleTitle
}

// StartLocationID returns the starting point identity, zero when unset.
func (p *PreBatch) StartLocationID() kernel.UUID {
	return p.startLocationID
}

// StartLocationType returns the kind of directory entry the start location
// refers to.
func (p *PreBatch) StartLocationType() string {
	return p.startLocationType
}

// PlannedDate returns the delivery date.
func (p *PreBatch) PlannedDate() time.Time {
	return p.plannedDate
}

// TimeWindow returns the delivery time window.
func (p *PreBatch) TimeWindow() string {
	return p.timeWindow
}

// Stops returns the working set order captured at save time.
func (p *PreBatch) Stops() []*stop.Stop {
	return slices.Clone(p.stops)
}

// AIOptions returns the optimizer toggles, nil unless AI-driven.
func (p *PreBatch) AIOptions() *AIOptions {
	return p.aiOptions
}

// SuggestedVehicleID returns the vehicle recommendation, zero when unset.
func (p *PreBatch) SuggestedVehicleID() kernel.UUID {
	return p.suggestedVehicleID
}

// Notes returns the free-form notes.
func (p *PreBatch) Notes() string {
	return p.notes
}

// SavedStep returns the workflow step to resume at.
func (p *PreBatch) SavedStep() int {
	return p.savedStep
}

// CreatedAt returns when the draft was first saved.
func (p *PreBatch) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns when the draft last changed.
func (p *PreBatch) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *PreBatch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *PreBatch) setSourceMethod(sourceMethod string) error {
	if sourceMethod == "" {
		return errs.NewValueIsRequiredError("sourceMethod is required")
	}

	p.sourceMethod = sourceMethod
	return nil
}

func (p *PreBatch) setScheduleTitle(scheduleTitle string) error {
	if scheduleTitle == "" {
		return errs.NewValueIsRequiredError("scheduleTitle is required")
	}

	p.scheduleTitle = scheduleTitle
	return nil
}

func (p *PreBatch) setStops(stops []*stop.Stop) error {
	var set []error
	for i, s := range stops {
		if err := s.Validate(); err != nil {
			set = append(set, fmt.Errorf("stop %d: %w", i, err))
		}
	}
	if err := errors.Join(set...); err != nil {
		return err
	}

	p.stops = slices.Clone(stops)
	return nil
}

func (p *PreBatch) setSavedStep(savedStep int) error {
	if savedStep < savedStepMin || savedStep > savedStepMax {
		return errs.NewValueIsOutOfRangeError("savedStep", savedStep, savedStepMin, savedStepMax)
	}

	p.savedStep = savedStep
	return nil
}
