package session

import (
	"errors"
	"fmt"
	"time"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/route"
	"batching/internal/core/domain/model/stop"
	"batching/internal/core/domain/model/vehicle"
	"batching/internal/pkg/guard"
)

// Domain errors for workflow session operations.
var (
	// ErrInvalidTransition is returned when a step change is not allowed from
	// the current session state.
	ErrInvalidTransition = errors.New("invalid step transition")
	// ErrOperationPending is returned when an async operation is re-invoked
	// while its previous invocation is still in flight.
	ErrOperationPending = errors.New("operation already pending")
	// ErrFacilityNotInWorkingSet is returned when a slot action references a
	// facility outside the working set.
	ErrFacilityNotInWorkingSet = errors.New("facility is not in the working set")
	// ErrSessionIsNotConstructed is returned when using an improperly
	// initialized WorkflowSession.
	ErrSessionIsNotConstructed = errors.New("WorkflowSession must be created via NewWorkflowSession constructor")
)

// WorkflowSession is the aggregate root of the batch planning workflow.
// It accumulates every choice the user makes across the five steps and is
// mutated exclusively through its action set. All mutations are synchronous
// in-memory transitions; the three async operations (optimize, save draft,
// confirm) are modeled as pending flags so a caller can refuse re-invocation
// while one is in flight.
//
// Key responsibilities:
//   - Guarding step transitions through the CanProceed gate
//   - Composing the working set, the slot board, and the route stage
//   - Keeping the slot board free of facilities that left the working set
//   - Failing clean: a rejected action never leaves partial state behind
type WorkflowSession struct {
	// id uniquely identifies the session
	id kernel.UUID

	// currentStep is the workflow position, StepSourceSelection initially
	currentStep Step

	// source selection (step 1)
	sourceMethod    string
	sourceSubOption string

	// schedule fields (step 2)
	scheduleTitle     string
	startLocationID   kernel.UUID
	startLocationType string
	plannedDate       time.Time
	timeWindow        string

	// workingSet is the ordered list of stops chosen for the batch
	workingSet *stop.WorkingSet

	// aiOptions configures the optimizer when the sub-option is AI-driven
	aiOptions AIOptimizationOptions

	// suggestedVehicleID is the system's vehicle recommendation, if any
	suggestedVehicleID kernel.UUID

	// batch fields (step 3)
	batchName string
	priority  string

	// commitment fields
	vehicleID  kernel.UUID
	driverID   kernel.UUID
	slotBoard  *vehicle.SlotBoard
	routeStage *route.RouteStage

	notes string

	// preBatchID is set once a draft has been persisted
	preBatchID kernel.UUID

	// pending flags for the three async operations
	optimizePending  bool
	saveDraftPending bool
	confirmPending   bool

	// guard ensures the session was properly constructed
	guard guard.ConstructorGuard
}

// NewWorkflowSession creates an empty session at the initial step.
func NewWorkflowSession(id kernel.UUID) (*WorkflowSession, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	board, err := vehicle.NewSlotBoard(nil)
	if err != nil {
		return nil, err
	}

	return &WorkflowSession{
		id:          id,
		currentStep: StepSourceSelection,
		workingSet:  stop.NewWorkingSet(),
		slotBoard:   board,
		routeStage:  route.NewRouteStage(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the WorkflowSession was created via NewWorkflowSession.
func (s *WorkflowSession) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}

	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// ID returns the session identity.
func (s *WorkflowSession) ID() kernel.UUID {
	return s.id
}

// CurrentStep returns the workflow position.
func (s *WorkflowSession) CurrentStep() Step {
	return s.currentStep
}

// NextStep advances the workflow by one step. It is rejected with
// ErrInvalidTransition when the current step's gate is not satisfied or the
// session is already at the final step.
func (s *WorkflowSession) NextStep() error {
	if s.currentStep.IsLast() {
		return fmt.Errorf("%w: already at step %s", ErrInvalidTransition, s.currentStep)
	}
	if !CanProceed(s, s.currentStep) {
		return fmt.Errorf("%w: step %s requirements are not met", ErrInvalidTransition, s.currentStep)
	}

	s.currentStep++
	return nil
}

// PreviousStep moves the workflow back by one step. No-op at the first step.
func (s *WorkflowSession) PreviousStep() {
	if s.currentStep.IsFirst() {
		return
	}

	s.currentStep--
}

// GoToStep jumps directly to a step, bypassing the gate. Used only when
// resuming a persisted draft at its saved step.
func (s *WorkflowSession) GoToStep(step Step) error {
	if err := step.Validate(); err != nil {
		return err
	}

	s.currentStep = step
	return nil
}

// Reset clears the session back to its initial empty state. Used on cancel
// and after a successful commit. The session identity is kept.
func (s *WorkflowSession) Reset() {
	board, _ := vehicle.NewSlotBoard(nil)

	s.currentStep = StepSourceSelection
	s.sourceMethod = ""
	s.sourceSubOption = ""
	s.scheduleTitle = ""
	s.startLocationID = kernel.UUID{}
	s.startLocationType = ""
	s.plannedDate = time.Time{}
	s.timeWindow = ""
	s.workingSet = stop.NewWorkingSet()
	s.aiOptions = AIOptimizationOptions{}
	s.suggestedVehicleID = kernel.UUID{}
	s.batchName = ""
	s.priority = ""
	s.vehicleID = kernel.UUID{}
	s.driverID = kernel.UUID{}
	s.slotBoard = board
	s.routeStage = route.NewRouteStage()
	s.notes = ""
	s.preBatchID = kernel.UUID{}
	s.optimizePending = false
	s.saveDraftPending = false
	s.confirmPending = false
}

// SetSourceMethod records how the batch's stops are sourced.
func (s *WorkflowSession) SetSourceMethod(method string) {
	s.sourceMethod = method
}

// SetSourceSubOption records the sub-variant of the chosen source method.
func (s *WorkflowSession) SetSourceSubOption(subOption string) {
	s.sourceSubOption = subOption
}

// SetScheduleTitle records the schedule title.
func (s *WorkflowSession) SetScheduleTitle(title string) {
	s.scheduleTitle = title
}

// SetStartLocation records the route's starting point by directory identity
// and location type.
func (s *WorkflowSession) SetStartLocation(id kernel.UUID, locationType string) {
	s.startLocationID = id
	s.startLocationType = locationType
}

// SetPlannedDate records the delivery date.
func (s *WorkflowSession) SetPlannedDate(date time.Time) {
	s.plannedDate = date
}

// SetTimeWindow records the delivery time window.
func (s *WorkflowSession) SetTimeWindow(window string) {
	s.timeWindow = window
}

// AddToWorkingSet appends a stop. Adding a facility already present is a
// silent no-op; the return value reports whether the set changed.
func (s *WorkflowSession) AddToWorkingSet(item *stop.Stop) bool {
	return s.workingSet.Add(item)
}

// RemoveFromWorkingSet deletes a stop and, in the same logical transaction,
// drops any slot assignment referencing it.
func (s *WorkflowSession) RemoveFromWorkingSet(facilityID kernel.UUID) bool {
	if !s.workingSet.Remove(facilityID) {
		return false
	}

	s.slotBoard.DropFacility(facilityID)
	return true
}

// ReorderWorkingSet moves a stop between positions.
func (s *WorkflowSession) ReorderWorkingSet(fromIndex, toIndex int) error {
	return s.workingSet.Reorder(fromIndex, toIndex)
}

// ClearWorkingSet empties the working set and every slot assignment.
func (s *WorkflowSession) ClearWorkingSet() {
	s.workingSet.Clear()
	s.slotBoard.Clear()
}

// WorkingSet returns the ordered stops chosen for the batch.
func (s *WorkflowSession) WorkingSet() *stop.WorkingSet {
	return s.workingSet
}

// SetAIOptimizationOptions shallow-merges a partial update of the four
// optimizer toggles.
func (s *WorkflowSession) SetAIOptimizationOptions(patch AIOptimizationOptionsPatch) {
	s.aiOptions = s.aiOptions.Merge(patch)
}

// AIOptions returns the optimizer toggles.
func (s *WorkflowSession) AIOptions() AIOptimizationOptions {
	return s.aiOptions
}

// SetSuggestedVehicle records the system's vehicle recommendation.
func (s *WorkflowSession) SetSuggestedVehicle(vehicleID kernel.UUID) {
	s.suggestedVehicleID = vehicleID
}

// SetBatchName records the batch name.
func (s *WorkflowSession) SetBatchName(name string) {
	s.batchName = name
}

// SetPriority records the batch priority.
func (s *WorkflowSession) SetPriority(priority string) {
	s.priority = priority
}

// SetNotes records free-form notes carried into the draft and commit
// payloads.
func (s *WorkflowSession) SetNotes(notes string) {
	s.notes = notes
}

// CommitVehicle selects the vehicle and rebuilds the slot board over its
// tier layout. Prior slot assignments are discarded since they addressed the
// old layout.
func (s *WorkflowSession) CommitVehicle(vehicleID kernel.UUID, tiers []vehicle.Tier) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	board, err := vehicle.NewSlotBoard(tiers)
	if err != nil {
		return err
	}

	s.vehicleID = vehicleID
	s.slotBoard = board
	return nil
}

// AssignDriver records the driver for the batch.
func (s *WorkflowSession) AssignDriver(driverID kernel.UUID) {
	s.driverID = driverID
}

// AssignFacilityToSlot places a working-set facility into the slot addressed
// by key. Facilities outside the working set are rejected so the board never
// references a stop that is not part of the batch.
func (s *WorkflowSession) AssignFacilityToSlot(key vehicle.SlotKey, facilityID kernel.UUID) error {
	item, ok := s.workingSet.Get(facilityID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFacilityNotInWorkingSet, facilityID)
	}

	return s.slotBoard.Assign(key, item.FacilityID(), item.FacilityName(), item.RequisitionIDs())
}

// UnassignSlot empties the slot addressed by key. No-op when already empty.
func (s *WorkflowSession) UnassignSlot(key vehicle.SlotKey) {
	s.slotBoard.Unassign(key)
}

// AutoAssignSlots fills empty slots from the unassigned facilities in
// working-set order.
func (s *WorkflowSession) AutoAssignSlots() {
	s.slotBoard.AutoAssign(s.workingSet)
}

// SlotBoard returns the slot assignment state for the selected vehicle.
func (s *WorkflowSession) SlotBoard() *vehicle.SlotBoard {
	return s.slotBoard
}

// ApplyRoute stores a successful optimization result. The prior result is
// left untouched when the incoming one is invalid.
func (s *WorkflowSession) ApplyRoute(points []route.RoutePoint, distanceKm float64, durationMin int) error {
	return s.routeStage.Apply(points, distanceKm, durationMin)
}

// RouteStage returns the route optimization state.
func (s *WorkflowSession) RouteStage() *route.RouteStage {
	return s.routeStage
}

// SetPreBatchID records the persisted draft identity after a successful
// save.
func (s *WorkflowSession) SetPreBatchID(id kernel.UUID) {
	s.preBatchID = id
}

// BeginOptimize marks the route optimization call in flight. Rejected with
// ErrOperationPending while a previous call has not resolved.
func (s *WorkflowSession) BeginOptimize() error {
	if s.optimizePending {
		return fmt.Errorf("%w: optimize", ErrOperationPending)
	}

	s.optimizePending = true
	return nil
}

// EndOptimize clears the optimization pending flag.
func (s *WorkflowSession) EndOptimize() {
	s.optimizePending = false
}

// IsOptimizePending reports whether an optimization call is in flight.
func (s *WorkflowSession) IsOptimizePending() bool {
	return s.optimizePending
}

// BeginSaveDraft marks the save-draft call in flight. Rejected with
// ErrOperationPending while a previous call has not resolved.
func (s *WorkflowSession) BeginSaveDraft() error {
	if s.saveDraftPending {
		return fmt.Errorf("%w: save draft", ErrOperationPending)
	}

	s.saveDraftPending = true
	return nil
}

// EndSaveDraft clears the save-draft pending flag.
func (s *WorkflowSession) EndSaveDraft() {
	s.saveDraftPending = false
}

// IsSaveDraftPending reports whether a save-draft call is in flight.
func (s *WorkflowSession) IsSaveDraftPending() bool {
	return s.saveDraftPending
}

// BeginConfirm marks the confirm call in flight. Rejected with
// ErrOperationPending while a previous call has not resolved.
func (s *WorkflowSession) BeginConfirm() error {
	if s.confirmPending {
		return fmt.Errorf("%w: confirm", ErrOperationPending)
	}

	s.confirmPending = true
	return nil
}

// EndConfirm clears the confirm pending flag.
func (s *WorkflowSession) EndConfirm() {
	s.confirmPending = false
}

// IsConfirmPending reports whether a confirm call is in flight.
func (s *WorkflowSession) IsConfirmPending() bool {
	return s.confirmPending
}

// SourceMethod returns how the batch's stops are sourced.
func (s *WorkflowSession) SourceMethod() string {
	return s.sourceMethod
}

// SourceSubOption returns the sub-variant of the chosen source method.
func (s *WorkflowSession) SourceSubOption() string {
	return s.sourceSubOption
}

// ScheduleTitle returns the schedule title.
func (s *WorkflowSession) ScheduleTitle() string {
	return s.scheduleTitle
}

// StartLocationID returns the route's starting point identity.
func (s *WorkflowSession) StartLocationID() kernel.UUID {
	return s.startLocationID
}

// StartLocationType returns the kind of directory entry the start location
// refers to.
func (s *WorkflowSession) StartLocationType() string {
	return s.startLocationType
}

// PlannedDate returns the delivery date, zero when unset.
func (s *WorkflowSession) PlannedDate() time.Time {
	return s.plannedDate
}

// TimeWindow returns the delivery time window.
func (s *WorkflowSession) TimeWindow() string {
	return s.timeWindow
}

// SuggestedVehicleID returns the system's vehicle recommendation, zero when
// unset.
func (s *WorkflowSession) SuggestedVehicleID() kernel.UUID {
	return s.suggestedVehicleID
}

// BatchName returns the batch name.
func (s *WorkflowSession) BatchName() string {
	return s.batchName
}

// Priority returns the batch priority.
func (s *WorkflowSession) Priority() string {
	return s.priority
}

// VehicleID returns the committed vehicle identity, zero when unset.
func (s *WorkflowSession) VehicleID() kernel.UUID {
	return s.vehicleID
}

// DriverID returns the assigned driver identity, zero when unset.
func (s *WorkflowSession) DriverID() kernel.UUID {
	return s.driverID
}

// Notes returns the free-form notes.
func (s *WorkflowSession) Notes() string {
	return s.notes
}

// PreBatchID returns the persisted draft identity, zero before the first
// successful save.
func (s *WorkflowSession) PreBatchID() kernel.UUID {
	return s.preBatchID
}
