package http

import (
	"time"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/session"
	"batching/internal/core/domain/model/stop"
	"batching/internal/core/domain/services"
)

// Error is the standard error payload for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SourceSelectionRequest sets the source step fields.
type SourceSelectionRequest struct {
	Method    string `json:"method"`
	SubOption string `json:"sub_option,omitempty"`
}

// ScheduleRequest sets the schedule step fields.
type ScheduleRequest struct {
	Title             string    `json:"title"`
	StartLocationID   string    `json:"start_location_id"`
	StartLocationType string    `json:"start_location_type"`
	PlannedDate       time.Time `json:"planned_date"`
	TimeWindow        string    `json:"time_window,omitempty"`
}

// AddStopRequest adds one facility to the working set.
type AddStopRequest struct {
	FacilityID     string   `json:"facility_id"`
	FacilityName   string   `json:"facility_name"`
	RequisitionIDs []string `json:"requisition_ids,omitempty"`
	SlotDemand     int      `json:"slot_demand"`
}

// ReorderStopsRequest moves a stop within the working set.
type ReorderStopsRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// AIOptionsRequest patches the optimizer toggles. Absent fields keep their
// current values.
type AIOptionsRequest struct {
	MinimizeDistance    *bool `json:"minimize_distance,omitempty"`
	ConsiderTraffic     *bool `json:"consider_traffic,omitempty"`
	PrioritizeColdChain *bool `json:"prioritize_cold_chain,omitempty"`
	BalanceLoad         *bool `json:"balance_load,omitempty"`
}

// TierRequest describes one tier of the chosen vehicle's layout.
type TierRequest struct {
	Name       string  `json:"name"`
	SortOrder  int     `json:"sort_order"`
	SlotCount  int     `json:"slot_count"`
	CapacityKg float64 `json:"capacity_kg,omitempty"`
	CapacityM3 float64 `json:"capacity_m3,omitempty"`
}

// VehicleRequest commits the vehicle choice and rebuilds the slot board.
type VehicleRequest struct {
	VehicleID string        `json:"vehicle_id"`
	Tiers     []TierRequest `json:"tiers"`
}

// DetailsRequest sets the batch naming and staffing fields.
type DetailsRequest struct {
	BatchName string `json:"batch_name,omitempty"`
	Priority  string `json:"priority,omitempty"`
	DriverID  string `json:"driver_id,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// AssignSlotRequest places a facility into a slot.
type AssignSlotRequest struct {
	SlotKey    string `json:"slot_key"`
	FacilityID string `json:"facility_id"`
}

// UnassignSlotRequest clears a slot.
type UnassignSlotRequest struct {
	SlotKey string `json:"slot_key"`
}

// GoToStepRequest jumps to a workflow step.
type GoToStepRequest struct {
	Step int `json:"step"`
}

// ResumeSessionRequest rebuilds a session from a saved draft.
type ResumeSessionRequest struct {
	DraftID string `json:"draft_id"`
}

// StopResponse is one working set entry.
type StopResponse struct {
	FacilityID     string   `json:"facility_id"`
	FacilityName   string   `json:"facility_name"`
	FacilityCode   string   `json:"facility_code,omitempty"`
	LGA            string   `json:"lga,omitempty"`
	Zone           string   `json:"zone,omitempty"`
	RequisitionIDs []string `json:"requisition_ids,omitempty"`
	SlotDemand     int      `json:"slot_demand"`
	Sequence       int      `json:"sequence"`
}

// SlotAssignmentResponse is one occupied slot on the board.
type SlotAssignmentResponse struct {
	SlotKey        string   `json:"slot_key"`
	FacilityID     string   `json:"facility_id"`
	FacilityName   string   `json:"facility_name"`
	RequisitionIDs []string `json:"requisition_ids,omitempty"`
}

// SlotBoardResponse is the vehicle step's board state.
type SlotBoardResponse struct {
	TotalSlots     int                      `json:"total_slots"`
	AssignedSlots  int                      `json:"assigned_slots"`
	UtilizationPct int                      `json:"utilization_pct"`
	Overflow       bool                     `json:"overflow"`
	Assignments    []SlotAssignmentResponse `json:"assignments"`
}

// RoutePointResponse is one point of the optimized route.
type RoutePointResponse struct {
	FacilityID string  `json:"facility_id"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Sequence   int     `json:"sequence"`
}

// RouteResponse is the route step's state.
type RouteResponse struct {
	Optimized            bool                 `json:"optimized"`
	Points               []RoutePointResponse `json:"points"`
	TotalDistanceKm      float64              `json:"total_distance_km"`
	EstimatedDurationMin int                  `json:"estimated_duration_min"`
}

// ChecklistItemResponse is one review checklist line.
type ChecklistItemResponse struct {
	Requirement string `json:"requirement"`
	Satisfied   bool   `json:"satisfied"`
	Blocking    bool   `json:"blocking"`
}

// SessionResponse is the full session state the UI renders from.
type SessionResponse struct {
	ID              string                  `json:"id"`
	CurrentStep     int                     `json:"current_step"`
	CanProceed      bool                    `json:"can_proceed"`
	SourceMethod    string                  `json:"source_method,omitempty"`
	SourceSubOption string                  `json:"source_sub_option,omitempty"`
	ScheduleTitle   string                  `json:"schedule_title,omitempty"`
	StartLocationID string                  `json:"start_location_id,omitempty"`
	PlannedDate     *time.Time              `json:"planned_date,omitempty"`
	TimeWindow      string                  `json:"time_window,omitempty"`
	Stops           []StopResponse          `json:"stops"`
	AIOptions       AIOptionsResponse       `json:"ai_options"`
	BatchName       string                  `json:"batch_name,omitempty"`
	Priority        string                  `json:"priority,omitempty"`
	VehicleID       string                  `json:"vehicle_id,omitempty"`
	DriverID        string                  `json:"driver_id,omitempty"`
	SlotBoard       SlotBoardResponse       `json:"slot_board"`
	Route           RouteResponse           `json:"route"`
	Notes           string                  `json:"notes,omitempty"`
	DraftID         string                  `json:"draft_id,omitempty"`
	Checklist       []ChecklistItemResponse `json:"checklist"`
}

// AIOptionsResponse mirrors the current optimizer toggles.
type AIOptionsResponse struct {
	MinimizeDistance    bool `json:"minimize_distance"`
	ConsiderTraffic     bool `json:"consider_traffic"`
	PrioritizeColdChain bool `json:"prioritize_cold_chain"`
	BalanceLoad         bool `json:"balance_load"`
}

// SaveDraftResponse returns the identity of the persisted draft.
type SaveDraftResponse struct {
	DraftID string `json:"draft_id"`
}

// ConfirmBatchResponse returns the identity of the committed batch.
type ConfirmBatchResponse struct {
	BatchID string `json:"batch_id"`
}

// toSessionResponse flattens the session aggregate into the read shape.
func toSessionResponse(sess *session.WorkflowSession, checklist []services.ChecklistItem) SessionResponse {
	resp := SessionResponse{
		ID:              sess.ID().String(),
		CurrentStep:     int(sess.CurrentStep()),
		CanProceed:      session.CanProceed(sess, sess.CurrentStep()),
		SourceMethod:    sess.SourceMethod(),
		SourceSubOption: sess.SourceSubOption(),
		ScheduleTitle:   sess.ScheduleTitle(),
		TimeWindow:      sess.TimeWindow(),
		Stops:           toStopResponses(sess.WorkingSet().Items()),
		BatchName:       sess.BatchName(),
		Priority:        sess.Priority(),
		Notes:           sess.Notes(),
	}

	if !sess.PlannedDate().IsZero() {
		plannedDate := sess.PlannedDate()
		resp.PlannedDate = &plannedDate
	}
	if sess.StartLocationID().Validate() == nil {
		resp.StartLocationID = sess.StartLocationID().String()
	}
	if sess.VehicleID().Validate() == nil {
		resp.VehicleID = sess.VehicleID().String()
	}
	if sess.DriverID().Validate() == nil {
		resp.DriverID = sess.DriverID().String()
	}
	if sess.PreBatchID().Validate() == nil {
		resp.DraftID = sess.PreBatchID().String()
	}

	options := sess.AIOptions()
	resp.AIOptions = AIOptionsResponse{
		MinimizeDistance:    options.MinimizeDistance,
		ConsiderTraffic:     options.ConsiderTraffic,
		PrioritizeColdChain: options.PrioritizeColdChain,
		BalanceLoad:         options.BalanceLoad,
	}

	board := sess.SlotBoard()
	boardResp := SlotBoardResponse{
		TotalSlots:     board.TotalSlots(),
		AssignedSlots:  board.AssignedSlots(),
		UtilizationPct: board.UtilizationPct(),
		Overflow:       board.IsOverflow(),
		Assignments:    make([]SlotAssignmentResponse, 0),
	}
	for key, assignment := range board.Assignments() {
		boardResp.Assignments = append(boardResp.Assignments, SlotAssignmentResponse{
			SlotKey:        key,
			FacilityID:     assignment.FacilityID().String(),
			FacilityName:   assignment.FacilityName(),
			RequisitionIDs: assignment.RequisitionIDs(),
		})
	}
	resp.SlotBoard = boardResp

	stage := sess.RouteStage()
	routeResp := RouteResponse{
		Optimized:            stage.IsOptimized(),
		Points:               make([]RoutePointResponse, 0),
		TotalDistanceKm:      stage.DistanceKm(),
		EstimatedDurationMin: stage.DurationMin(),
	}
	for _, point := range stage.Points() {
		routeResp.Points = append(routeResp.Points, RoutePointResponse{
			FacilityID: point.FacilityID().String(),
			Lat:        point.Point().Lat(),
			Lng:        point.Point().Lng(),
			Sequence:   point.Sequence(),
		})
	}
	resp.Route = routeResp

	resp.Checklist = make([]ChecklistItemResponse, 0, len(checklist))
	for _, item := range checklist {
		resp.Checklist = append(resp.Checklist, ChecklistItemResponse{
			Requirement: item.Requirement,
			Satisfied:   item.Satisfied,
			Blocking:    item.Blocking,
		})
	}

	return resp
}

func stopFromRequest(facilityID kernel.UUID, req AddStopRequest) (*stop.Stop, error) {
	return stop.NewStop(facilityID, req.FacilityName, req.RequisitionIDs, req.SlotDemand)
}

func toStopResponses(items []*stop.Stop) []StopResponse {
	out := make([]StopResponse, 0, len(items))
	for _, item := range items {
		out = append(out, StopResponse{
			FacilityID:     item.FacilityID().String(),
			FacilityName:   item.FacilityName(),
			FacilityCode:   item.FacilityCode(),
			LGA:            item.LGA(),
			Zone:           item.Zone(),
			RequisitionIDs: item.RequisitionIDs(),
			SlotDemand:     item.SlotDemand(),
			Sequence:       item.Sequence(),
		})
	}
	return out
}
