// Package http exposes the planning workflow over a REST API. Each endpoint
// resolves the session from the registry, applies one operation, and returns
// the refreshed session state.
package http

import (
	"errors"
	"net/http"

	"batching/internal/core/application/sessions"
	"batching/internal/core/application/usecases/commands"
	"batching/internal/core/application/usecases/queries"
	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/prebatch"
	"batching/internal/core/domain/model/session"
	"batching/internal/core/domain/model/vehicle"
	"batching/internal/core/domain/services"
	"batching/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registry *sessions.Registry

	// Command handlers
	saveDraftHandler commands.SaveDraftCommandHandler
	confirmHandler   commands.ConfirmBatchCommandHandler
	optimizeHandler  commands.OptimizeRouteCommandHandler

	// Draft loading for resume
	uowFactory commands.PreBatchUoWFactory

	// Domain services
	draftAssembler services.DraftAssembler
	checklist      services.ReviewChecklist

	// Query handlers
	getFacilitiesHandler queries.GetFacilitiesQueryHandler
	getVehiclesHandler   queries.GetVehiclesQueryHandler
	getDriversHandler    queries.GetDriversQueryHandler
}

// NewServer creates a new HTTP server with the required dependencies.
func NewServer(
	registry *sessions.Registry,
	saveDraftHandler commands.SaveDraftCommandHandler,
	confirmHandler commands.ConfirmBatchCommandHandler,
	optimizeHandler commands.OptimizeRouteCommandHandler,
	uowFactory commands.PreBatchUoWFactory,
	getFacilitiesHandler queries.GetFacilitiesQueryHandler,
	getVehiclesHandler queries.GetVehiclesQueryHandler,
	getDriversHandler queries.GetDriversQueryHandler,
) *Server {
	return &Server{
		registry:             registry,
		saveDraftHandler:     saveDraftHandler,
		confirmHandler:       confirmHandler,
		optimizeHandler:      optimizeHandler,
		uowFactory:           uowFactory,
		draftAssembler:       services.NewDraftAssembler(),
		checklist:            services.NewReviewChecklist(),
		getFacilitiesHandler: getFacilitiesHandler,
		getVehiclesHandler:   getVehiclesHandler,
		getDriversHandler:    getDriversHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/facilities", s.GetFacilities)
	api.GET("/vehicles", s.GetVehicles)
	api.GET("/drivers", s.GetDrivers)

	api.POST("/sessions", s.CreateSession)
	api.POST("/sessions/resume", s.ResumeSession)
	api.GET("/sessions/:id", s.GetSession)
	api.DELETE("/sessions/:id", s.DiscardSession)

	api.POST("/sessions/:id/next", s.NextStep)
	api.POST("/sessions/:id/previous", s.PreviousStep)
	api.POST("/sessions/:id/goto", s.GoToStep)
	api.POST("/sessions/:id/reset", s.ResetSession)

	api.PUT("/sessions/:id/source", s.SetSource)
	api.PUT("/sessions/:id/schedule", s.SetSchedule)
	api.PUT("/sessions/:id/ai-options", s.SetAIOptions)
	api.PUT("/sessions/:id/vehicle", s.SetVehicle)
	api.PUT("/sessions/:id/details", s.SetDetails)

	api.POST("/sessions/:id/stops", s.AddStop)
	api.DELETE("/sessions/:id/stops/:facilityId", s.RemoveStop)
	api.POST("/sessions/:id/stops/reorder", s.ReorderStops)
	api.DELETE("/sessions/:id/stops", s.ClearStops)

	api.POST("/sessions/:id/slots/assign", s.AssignSlot)
	api.POST("/sessions/:id/slots/unassign", s.UnassignSlot)
	api.POST("/sessions/:id/slots/auto", s.AutoAssignSlots)

	api.POST("/sessions/:id/route/optimize", s.OptimizeRoute)
	api.POST("/sessions/:id/draft", s.SaveDraft)
	api.POST("/sessions/:id/confirm", s.ConfirmBatch)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetFacilities handles GET /api/v1/facilities.
func (s *Server) GetFacilities(ctx echo.Context) error {
	query := queries.NewGetFacilitiesQuery()

	facilities, err := s.getFacilitiesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve facilities",
		})
	}

	type facilityResponse struct {
		ID   string  `json:"id"`
		Name string  `json:"name"`
		Code string  `json:"code,omitempty"`
		LGA  string  `json:"lga,omitempty"`
		Zone string  `json:"zone,omitempty"`
		Lat  float64 `json:"lat"`
		Lng  float64 `json:"lng"`
	}

	response := make([]facilityResponse, len(facilities))
	for i, facility := range facilities {
		response[i] = facilityResponse{
			ID:   facility.ID.String(),
			Name: facility.Name,
			Code: facility.Code,
			LGA:  facility.LGA,
			Zone: facility.Zone,
			Lat:  facility.Point.Lat(),
			Lng:  facility.Point.Lng(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	query := queries.NewGetVehiclesQuery()

	vehicles, err := s.getVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve vehicles",
		})
	}

	type vehicleResponse struct {
		ID                 string                 `json:"id"`
		Name               string                 `json:"name"`
		RegistrationNumber string                 `json:"registration_number,omitempty"`
		Tiers              []queries.TierResponse `json:"tiers"`
	}

	response := make([]vehicleResponse, len(vehicles))
	for i, v := range vehicles {
		tiers := v.Tiers
		if tiers == nil {
			tiers = make([]queries.TierResponse, 0)
		}
		response[i] = vehicleResponse{
			ID:                 v.ID.String(),
			Name:               v.Name,
			RegistrationNumber: v.RegistrationNumber,
			Tiers:              tiers,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetDriversQuery()

	drivers, err := s.getDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve drivers",
		})
	}

	type driverResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Phone string `json:"phone,omitempty"`
	}

	response := make([]driverResponse, len(drivers))
	for i, driver := range drivers {
		response[i] = driverResponse{
			ID:    driver.ID.String(),
			Name:  driver.Name,
			Phone: driver.Phone,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateSession handles POST /api/v1/sessions.
func (s *Server) CreateSession(ctx echo.Context) error {
	sess, err := s.registry.Create()
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create session",
		})
	}

	return ctx.JSON(http.StatusCreated, s.sessionResponse(sess))
}

// ResumeSession handles POST /api/v1/sessions/resume. It loads the saved
// draft and rebuilds a session at the step the draft was saved at.
func (s *Server) ResumeSession(ctx echo.Context) error {
	var req ResumeSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	draftID, err := kernel.UUIDFromString(req.DraftID)
	if err != nil {
		return badRequest(ctx, "Invalid draft id")
	}

	draft, err := s.uowFactory.Create().PreBatchRepository().Get(ctx.Request().Context(), draftID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Draft not found")
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load draft",
		})
	}

	if draft.Status() != prebatch.StatusDraft {
		return conflict(ctx, "Draft is no longer resumable")
	}

	sess, err := s.draftAssembler.ResumeSession(kernel.NewUUID(), draft)
	if err != nil {
		return badRequest(ctx, "Failed to rebuild session: "+err.Error())
	}

	if err = s.registry.Put(sess); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to register session",
		})
	}

	return ctx.JSON(http.StatusCreated, s.sessionResponse(sess))
}

// GetSession handles GET /api/v1/sessions/:id.
func (s *Server) GetSession(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// DiscardSession handles DELETE /api/v1/sessions/:id.
func (s *Server) DiscardSession(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid session id")
	}

	s.registry.Remove(id)
	return ctx.NoContent(http.StatusNoContent)
}

// NextStep handles POST /api/v1/sessions/:id/next. The transition is refused
// when the current step's gate is not satisfied.
func (s *Server) NextStep(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	if err = sess.NextStep(); err != nil {
		return conflict(ctx, "Cannot advance: "+err.Error())
	}

	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// PreviousStep handles POST /api/v1/sessions/:id/previous.
func (s *Server) PreviousStep(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	sess.PreviousStep()
	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// GoToStep handles POST /api/v1/sessions/:id/goto.
func (s *Server) GoToStep(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	var req GoToStepRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	step, err := session.StepFromInt(req.Step)
	if err != nil {
		return badRequest(ctx, "Invalid step")
	}

	if err = sess.GoToStep(step); err != nil {
		return conflict(ctx, "Cannot jump to step: "+err.Error())
	}

	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// ResetSession handles POST /api/v1/sessions/:id/reset.
func (s *Server) ResetSession(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	sess.Reset()
	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// SetSource handles PUT /api/v1/sessions/:id/source.
func (s *Server) SetSource(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	var req SourceSelectionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sess.SetSourceMethod(req.Method)
	sess.SetSourceSubOption(req.SubOption)
	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// SetSchedule handles PUT /api/v1/sessions/:id/schedule.
func (s *Server) SetSchedule(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	var req ScheduleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sess.SetScheduleTitle(req.Title)
	sess.SetPlannedDate(req.PlannedDate)
	sess.SetTimeWindow(req.TimeWindow)

	if req.StartLocationID != "" {
		startLocationID, idErr := kernel.UUIDFromString(req.StartLocationID)
		if idErr != nil {
			return badRequest(ctx, "Invalid start location id")
		}
		sess.SetStartLocation(startLocationID, req.StartLocationType)
	}

	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// SetAIOptions handles PUT /api/v1/sessions/:id/ai-options. Absent fields
// keep their current values.
func (s *Server) SetAIOptions(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	var req AIOptionsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sess.SetAIOptimizationOptions(session.AIOptimizationOptionsPatch{
		MinimizeDistance:    req.MinimizeDistance,
		ConsiderTraffic:     req.ConsiderTraffic,
		PrioritizeColdChain: req.PrioritizeColdChain,
		BalanceLoad:         req.BalanceLoad,
	})

	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// SetVehicle handles PUT /api/v1/sessions/:id/vehicle. Committing a vehicle
// rebuilds the slot board from the new layout; existing assignments are
// discarded.
func (s *Server) SetVehicle(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	var req VehicleRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return badRequest(ctx, "Invalid vehicle id")
	}

	tiers := make([]vehicle.Tier, 0, len(req.Tiers))
	for _, t := range req.Tiers {
		tier, tierErr := vehicle.NewTier(t.Name, t.SortOrder, t.SlotCount, t.CapacityKg, t.CapacityM3)
		if tierErr != nil {
			return badRequest(ctx, "Invalid tier layout: "+tierErr.Error())
		}
		tiers = append(tiers, tier)
	}

	if err = sess.CommitVehicle(vehicleID, tiers); err != nil {
		return badRequest(ctx, "Invalid vehicle layout: "+err.Error())
	}

	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// SetDetails handles PUT /api/v1/sessions/:id/details.
func (s *Server) SetDetails(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	var req DetailsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if req.BatchName != "" {
		sess.SetBatchName(req.BatchName)
	}
	if req.Priority != "" {
		sess.SetPriority(req.Priority)
	}
	if req.Notes != "" {
		sess.SetNotes(req.Notes)
	}
	if req.DriverID != "" {
		driverID, idErr := kernel.UUIDFromString(req.DriverID)
		if idErr != nil {
			return badRequest(ctx, "Invalid driver id")
		}
		sess.AssignDriver(driverID)
	}

	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// AddStop handles POST /api/v1/sessions/:id/stops. Adding a facility already
// in the working set is a no-op.
func (s *Server) AddStop(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	var req AddStopRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	facilityID, err := kernel.UUIDFromString(req.FacilityID)
	if err != nil {
		return badRequest(ctx, "Invalid facility id")
	}

	item, err := stopFromRequest(facilityID, req)
	if err != nil {
		return badRequest(ctx, "Invalid stop: "+err.Error())
	}

	sess.AddToWorkingSet(item)
	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// RemoveStop handles DELETE /api/v1/sessions/:id/stops/:facilityId. Removing
// a facility also drops any slot assignment that references it.
func (s *Server) RemoveStop(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	facilityID, err := kernel.UUIDFromString(ctx.Param("facilityId"))
	if err != nil {
		return badRequest(ctx, "Invalid facility id")
	}

	sess.RemoveFromWorkingSet(facilityID)
	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// ReorderStops handles POST /api/v1/sessions/:id/stops/reorder.
func (s *Server) ReorderStops(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	var req ReorderStopsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if err = sess.ReorderWorkingSet(req.From, req.To); err != nil {
		return badRequest(ctx, "Cannot reorder: "+err.Error())
	}

	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// ClearStops handles DELETE /api/v1/sessions/:id/stops.
func (s *Server) ClearStops(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	sess.ClearWorkingSet()
	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// AssignSlot handles POST /api/v1/sessions/:id/slots/assign. Assigning a
// facility already placed elsewhere moves it to the new slot.
func (s *Server) AssignSlot(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	var req AssignSlotRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	key, err := vehicle.ParseSlotKey(req.SlotKey)
	if err != nil {
		return badRequest(ctx, "Invalid slot key")
	}

	facilityID, err := kernel.UUIDFromString(req.FacilityID)
	if err != nil {
		return badRequest(ctx, "Invalid facility id")
	}

	if err = sess.AssignFacilityToSlot(key, facilityID); err != nil {
		return badRequest(ctx, "Cannot assign slot: "+err.Error())
	}

	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// UnassignSlot handles POST /api/v1/sessions/:id/slots/unassign.
func (s *Server) UnassignSlot(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	var req UnassignSlotRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	key, err := vehicle.ParseSlotKey(req.SlotKey)
	if err != nil {
		return badRequest(ctx, "Invalid slot key")
	}

	sess.UnassignSlot(key)
	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// AutoAssignSlots handles POST /api/v1/sessions/:id/slots/auto.
func (s *Server) AutoAssignSlots(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	sess.AutoAssignSlots()
	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// OptimizeRoute handles POST /api/v1/sessions/:id/route/optimize. The
// session stays fully editable while the optimizer runs; only a second
// optimize on the same session is refused.
func (s *Server) OptimizeRoute(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	if err = sess.BeginOptimize(); err != nil {
		return conflict(ctx, "Route optimization already in progress")
	}
	defer sess.EndOptimize()

	cmd, err := commands.NewOptimizeRouteCommand(sess)
	if err != nil {
		return badRequest(ctx, "Cannot optimize: "+err.Error())
	}

	if err = s.optimizeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Route optimization failed: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, s.sessionResponse(sess))
}

// SaveDraft handles POST /api/v1/sessions/:id/draft. The first save creates
// a draft; later saves update it in place.
func (s *Server) SaveDraft(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	if err = sess.BeginSaveDraft(); err != nil {
		return conflict(ctx, "Draft save already in progress")
	}
	defer sess.EndSaveDraft()

	cmd, err := commands.NewSaveDraftCommand(kernel.NewUUID(), sess)
	if err != nil {
		return badRequest(ctx, "Cannot save draft: "+err.Error())
	}

	draftID, err := s.saveDraftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return badRequest(ctx, "Failed to save draft: "+err.Error())
	}

	sess.SetPreBatchID(draftID)
	return ctx.JSON(http.StatusCreated, SaveDraftResponse{DraftID: draftID.String()})
}

// ConfirmBatch handles POST /api/v1/sessions/:id/confirm. On success the
// session is cleared; on failure it is left fully intact so the commit can
// be retried.
func (s *Server) ConfirmBatch(ctx echo.Context) error {
	sess, err := s.sessionFromParam(ctx)
	if err != nil {
		return s.sessionError(ctx, err)
	}

	if err = sess.BeginConfirm(); err != nil {
		return conflict(ctx, "Confirmation already in progress")
	}
	defer sess.EndConfirm()

	batchID := kernel.NewUUID()
	cmd, err := commands.NewConfirmBatchCommand(batchID, sess)
	if err != nil {
		return badRequest(ctx, "Cannot confirm: "+err.Error())
	}

	if err = s.confirmHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return conflict(ctx, "Failed to commit batch: "+err.Error())
	}

	sess.Reset()
	s.registry.Remove(sess.ID())
	return ctx.JSON(http.StatusCreated, ConfirmBatchResponse{BatchID: batchID.String()})
}

func (s *Server) sessionResponse(sess *session.WorkflowSession) SessionResponse {
	return toSessionResponse(sess, s.checklist.Build(sess))
}

func (s *Server) sessionFromParam(ctx echo.Context) (*session.WorkflowSession, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return nil, err
	}
	return s.registry.Get(id)
}

func (s *Server) sessionError(ctx echo.Context, err error) error {
	if errors.Is(err, sessions.ErrSessionNotFound) {
		return notFound(ctx, "Session not found")
	}
	return badRequest(ctx, "Invalid session id")
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: message})
}
