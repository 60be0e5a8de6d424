package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	apihttp "batching/internal/adapters/in/http"
	"batching/internal/core/application/sessions"
	"batching/internal/core/application/usecases/commands"
	"batching/internal/core/application/usecases/queries"
	"batching/internal/core/domain/model/batch"
	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/prebatch"
	"batching/internal/core/domain/model/route"
	"batching/internal/core/domain/model/session"
	"batching/internal/core/ports"
	"batching/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory stand-in for the postgres layer so the HTTP
// surface can be tested without a database.
type memStore struct {
	mu      sync.Mutex
	drafts  map[kernel.UUID]*prebatch.PreBatch
	batches map[kernel.UUID]*batch.Batch
}

func newMemStore() *memStore {
	return &memStore{
		drafts:  make(map[kernel.UUID]*prebatch.PreBatch),
		batches: make(map[kernel.UUID]*batch.Batch),
	}
}

func (s *memStore) Add(_ context.Context, aggregate *prebatch.PreBatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[aggregate.ID()] = aggregate
	return nil
}

func (s *memStore) Update(_ context.Context, aggregate *prebatch.PreBatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("pre-batch", aggregate.ID().String())
	}
	s.drafts[aggregate.ID()] = aggregate
	return nil
}

func (s *memStore) Get(_ context.Context, id kernel.UUID) (*prebatch.PreBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("pre-batch", id.String())
	}
	return draft, nil
}

func (s *memStore) GetAllDraftsOlderThan(_ context.Context, cutoff time.Time) ([]*prebatch.PreBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*prebatch.PreBatch
	for _, draft := range s.drafts {
		if draft.Status() == prebatch.StatusDraft && draft.UpdatedAt().Before(cutoff) {
			out = append(out, draft)
		}
	}
	return out, nil
}

type memBatchRepo struct {
	store *memStore
}

func (r memBatchRepo) Add(_ context.Context, aggregate *batch.Batch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.batches[aggregate.ID()] = aggregate
	return nil
}

func (r memBatchRepo) Get(_ context.Context, id kernel.UUID) (*batch.Batch, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	b, ok := r.store.batches[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("batch", id.String())
	}
	return b, nil
}

type memUoW struct {
	store *memStore
}

func (u memUoW) Begin(context.Context) error    { return nil }
func (u memUoW) Commit(context.Context) error   { return nil }
func (u memUoW) Rollback(context.Context) error { return nil }

func (u memUoW) PreBatchRepository() ports.PreBatchRepository {
	return u.store
}

func (u memUoW) BatchRepository() ports.BatchRepository {
	return memBatchRepo{store: u.store}
}

type memPreBatchUoWFactory struct {
	store *memStore
}

func (f memPreBatchUoWFactory) Create() commands.PreBatchUoW {
	return memUoW{store: f.store}
}

type memUoWFactory struct {
	store *memStore
}

func (f memUoWFactory) Create() commands.UoW {
	return memUoW{store: f.store}
}

// fakeOptimizer visits the stops in the order they were sent.
type fakeOptimizer struct{}

func (fakeOptimizer) Optimize(_ context.Context, request ports.OptimizeRequest) (ports.OptimizeResult, error) {
	points := make([]route.RoutePoint, 0, len(request.Stops))
	for i, s := range request.Stops {
		point, err := route.NewRoutePoint(s.FacilityID, s.Point, i)
		if err != nil {
			return ports.OptimizeResult{}, err
		}
		points = append(points, point)
	}
	return ports.OptimizeResult{
		Points:               points,
		TotalDistanceKm:      12.5,
		EstimatedDurationMin: 40,
	}, nil
}

// fakeDirectory places every location at a fixed point.
type fakeDirectory struct{}

func (fakeDirectory) FacilityPoints(_ context.Context, facilityIDs []kernel.UUID) (map[kernel.UUID]kernel.GeoPoint, error) {
	out := make(map[kernel.UUID]kernel.GeoPoint, len(facilityIDs))
	for _, id := range facilityIDs {
		point, err := kernel.NewGeoPoint(9.05, 7.45)
		if err != nil {
			return nil, err
		}
		out[id] = point
	}
	return out, nil
}

func (fakeDirectory) StartPoint(context.Context, kernel.UUID, string) (kernel.GeoPoint, error) {
	return kernel.NewGeoPoint(9.0, 7.4)
}

func newTestServer(t *testing.T) (*echo.Echo, *memStore) {
	t.Helper()

	store := newMemStore()
	registry := sessions.NewRegistry()

	server := apihttp.NewServer(
		registry,
		commands.NewSaveDraftCommandHandler(memPreBatchUoWFactory{store: store}),
		commands.NewConfirmBatchCommandHandler(memUoWFactory{store: store}),
		commands.NewOptimizeRouteCommandHandler(fakeOptimizer{}, fakeDirectory{}),
		memPreBatchUoWFactory{store: store},
		queries.NewGetFacilitiesQueryHandler(nil),
		queries.NewGetVehiclesQueryHandler(nil),
		queries.NewGetDriversQueryHandler(nil),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e, store
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) apihttp.SessionResponse {
	t.Helper()

	var resp apihttp.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func createSession(t *testing.T, e *echo.Echo) apihttp.SessionResponse {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeSession(t, rec)
}

func TestServer_Health(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestServer_CreateSession(t *testing.T) {
	e, _ := newTestServer(t)

	sess := createSession(t, e)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, int(session.StepSourceSelection), sess.CurrentStep)
	assert.False(t, sess.CanProceed)
	assert.Empty(t, sess.Stops)
	assert.Len(t, sess.Checklist, 11)
}

func TestServer_GetSession_Errors(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/sessions/"+kernel.NewUUID().String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_NextStep_BlockedByGate(t *testing.T) {
	e, _ := newTestServer(t)
	sess := createSession(t, e)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/next", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_SourceSelection_UnlocksNextStep(t *testing.T) {
	e, _ := newTestServer(t)
	sess := createSession(t, e)

	rec := doJSON(t, e, http.MethodPut, "/api/v1/sessions/"+sess.ID+"/source", apihttp.SourceSelectionRequest{
		Method: "ai_generation",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeSession(t, rec).CanProceed)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int(session.StepSchedule), decodeSession(t, rec).CurrentStep)
}

func TestServer_SourceSelection_ReadyRequiresSubOption(t *testing.T) {
	e, _ := newTestServer(t)
	sess := createSession(t, e)

	rec := doJSON(t, e, http.MethodPut, "/api/v1/sessions/"+sess.ID+"/source", apihttp.SourceSelectionRequest{
		Method: session.SourceMethodReady,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeSession(t, rec).CanProceed)

	rec = doJSON(t, e, http.MethodPut, "/api/v1/sessions/"+sess.ID+"/source", apihttp.SourceSelectionRequest{
		Method:    session.SourceMethodReady,
		SubOption: "approved_requisitions",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeSession(t, rec).CanProceed)
}

func TestServer_AddStop_DuplicateFacilityIsNoOp(t *testing.T) {
	e, _ := newTestServer(t)
	sess := createSession(t, e)

	facilityID := kernel.NewUUID().String()
	request := apihttp.AddStopRequest{
		FacilityID:   facilityID,
		FacilityName: "Garki Clinic",
		SlotDemand:   1,
	}

	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/stops", request)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeSession(t, rec).Stops, 1)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/stops", request)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeSession(t, rec).Stops, 1)
}

func TestServer_ReorderStops(t *testing.T) {
	e, _ := newTestServer(t)
	sess := createSession(t, e)

	for _, name := range []string{"Garki Clinic", "Kubwa General", "Wuse PHC"} {
		rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/stops", apihttp.AddStopRequest{
			FacilityID:   kernel.NewUUID().String(),
			FacilityName: name,
			SlotDemand:   1,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/stops/reorder", apihttp.ReorderStopsRequest{
		From: 2,
		To:   0,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	stops := decodeSession(t, rec).Stops
	require.Len(t, stops, 3)
	assert.Equal(t, "Wuse PHC", stops[0].FacilityName)
	assert.Equal(t, "Garki Clinic", stops[1].FacilityName)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/stops/reorder", apihttp.ReorderStopsRequest{
		From: 0,
		To:   9,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_SlotAssignment(t *testing.T) {
	e, _ := newTestServer(t)
	sess := createSession(t, e)

	facilityID := kernel.NewUUID().String()
	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/stops", apihttp.AddStopRequest{
		FacilityID:   facilityID,
		FacilityName: "Garki Clinic",
		SlotDemand:   1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodPut, "/api/v1/sessions/"+sess.ID+"/vehicle", apihttp.VehicleRequest{
		VehicleID: kernel.NewUUID().String(),
		Tiers: []apihttp.TierRequest{
			{Name: "Upper", SortOrder: 1, SlotCount: 2},
			{Name: "Lower", SortOrder: 2, SlotCount: 2},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	board := decodeSession(t, rec).SlotBoard
	assert.Equal(t, 4, board.TotalSlots)
	assert.Equal(t, 0, board.AssignedSlots)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/slots/assign", apihttp.AssignSlotRequest{
		SlotKey:    "Upper-1",
		FacilityID: facilityID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	board = decodeSession(t, rec).SlotBoard
	require.Equal(t, 1, board.AssignedSlots)
	assert.Equal(t, 25, board.UtilizationPct)
	require.Len(t, board.Assignments, 1)
	assert.Equal(t, "Upper-1", board.Assignments[0].SlotKey)
	assert.Equal(t, facilityID, board.Assignments[0].FacilityID)

	// Assigning the same facility elsewhere moves it.
	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/slots/assign", apihttp.AssignSlotRequest{
		SlotKey:    "Lower-2",
		FacilityID: facilityID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	board = decodeSession(t, rec).SlotBoard
	require.Equal(t, 1, board.AssignedSlots)
	assert.Equal(t, "Lower-2", board.Assignments[0].SlotKey)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/slots/assign", apihttp.AssignSlotRequest{
		SlotKey:    "garbage",
		FacilityID: facilityID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/slots/unassign", apihttp.UnassignSlotRequest{
		SlotKey: "Lower-2",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decodeSession(t, rec).SlotBoard.AssignedSlots)
}

func TestServer_RemoveStop_DropsSlotAssignment(t *testing.T) {
	e, _ := newTestServer(t)
	sess := createSession(t, e)

	facilityID := kernel.NewUUID().String()
	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/stops", apihttp.AddStopRequest{
		FacilityID:   facilityID,
		FacilityName: "Garki Clinic",
		SlotDemand:   1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodPut, "/api/v1/sessions/"+sess.ID+"/vehicle", apihttp.VehicleRequest{
		VehicleID: kernel.NewUUID().String(),
		Tiers:     []apihttp.TierRequest{{Name: "Upper", SortOrder: 1, SlotCount: 2}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/slots/assign", apihttp.AssignSlotRequest{
		SlotKey:    "Upper-1",
		FacilityID: facilityID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodDelete, "/api/v1/sessions/"+sess.ID+"/stops/"+facilityID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeSession(t, rec)
	assert.Empty(t, resp.Stops)
	assert.Equal(t, 0, resp.SlotBoard.AssignedSlots)
}

func TestServer_GoToStep(t *testing.T) {
	e, _ := newTestServer(t)
	sess := createSession(t, e)

	// Jumping forward past an unsatisfied gate is refused.
	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/goto", apihttp.GoToStepRequest{
		Step: int(session.StepVehicle),
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/goto", apihttp.GoToStepRequest{Step: 42})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// advanceToReview walks a session through every step with valid data and
// returns its id.
func advanceToReview(t *testing.T, e *echo.Echo) (string, string) {
	t.Helper()

	sess := createSession(t, e)
	id := sess.ID

	rec := doJSON(t, e, http.MethodPut, "/api/v1/sessions/"+id+"/source", apihttp.SourceSelectionRequest{
		Method: "ai_generation",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodPut, "/api/v1/sessions/"+id+"/schedule", apihttp.ScheduleRequest{
		Title:             "Monday cold chain run",
		StartLocationID:   kernel.NewUUID().String(),
		StartLocationType: "warehouse",
		PlannedDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		TimeWindow:        "08:00-12:00",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	facilityID := kernel.NewUUID().String()
	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/stops", apihttp.AddStopRequest{
		FacilityID:     facilityID,
		FacilityName:   "Garki Clinic",
		RequisitionIDs: []string{"REQ-100"},
		SlotDemand:     1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/stops", apihttp.AddStopRequest{
		FacilityID:   kernel.NewUUID().String(),
		FacilityName: "Wuse PHC",
		SlotDemand:   1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodPut, "/api/v1/sessions/"+id+"/vehicle", apihttp.VehicleRequest{
		VehicleID: kernel.NewUUID().String(),
		Tiers: []apihttp.TierRequest{
			{Name: "Upper", SortOrder: 1, SlotCount: 2},
			{Name: "Lower", SortOrder: 2, SlotCount: 2},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, e, http.MethodPut, "/api/v1/sessions/"+id+"/details", apihttp.DetailsRequest{
		BatchName: "Abuja North Run",
		Priority:  "high",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/slots/auto", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/route/optimize", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	routeResp := decodeSession(t, rec).Route
	require.True(t, routeResp.Optimized)
	require.Len(t, routeResp.Points, 2)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int(session.StepReview), decodeSession(t, rec).CurrentStep)

	return id, facilityID
}

func TestServer_FullWorkflow_SaveDraftAndConfirm(t *testing.T) {
	e, store := newTestServer(t)

	id, _ := advanceToReview(t, e)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/draft", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var draftResp apihttp.SaveDraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draftResp))
	require.NotEmpty(t, draftResp.DraftID)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, draftResp.DraftID, decodeSession(t, rec).DraftID)

	// A second save updates the same draft.
	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/draft", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var resave apihttp.SaveDraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resave))
	assert.Equal(t, draftResp.DraftID, resave.DraftID)
	assert.Len(t, store.drafts, 1)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/confirm", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var confirmResp apihttp.ConfirmBatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &confirmResp))
	require.NotEmpty(t, confirmResp.BatchID)
	assert.Len(t, store.batches, 1)

	draftID, err := kernel.UUIDFromString(draftResp.DraftID)
	require.NoError(t, err)
	draft, err := store.Get(t.Context(), draftID)
	require.NoError(t, err)
	assert.Equal(t, prebatch.StatusConverted, draft.Status())

	// The session is gone once the batch is committed.
	rec = doJSON(t, e, http.MethodGet, "/api/v1/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ResumeDraft(t *testing.T) {
	e, _ := newTestServer(t)

	id, facilityID := advanceToReview(t, e)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/draft", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var draftResp apihttp.SaveDraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draftResp))

	rec = doJSON(t, e, http.MethodDelete, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/resume", apihttp.ResumeSessionRequest{
		DraftID: draftResp.DraftID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	resumed := decodeSession(t, rec)
	assert.NotEqual(t, id, resumed.ID)
	assert.Equal(t, draftResp.DraftID, resumed.DraftID)
	assert.Equal(t, "Monday cold chain run", resumed.ScheduleTitle)
	require.Len(t, resumed.Stops, 2)
	assert.Equal(t, facilityID, resumed.Stops[0].FacilityID)
	assert.Equal(t, []string{"REQ-100"}, resumed.Stops[0].RequisitionIDs)
}

func TestServer_ResumeDraft_Errors(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/resume", apihttp.ResumeSessionRequest{
		DraftID: "not-a-uuid",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/resume", apihttp.ResumeSessionRequest{
		DraftID: kernel.NewUUID().String(),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ResumeDraft_ConvertedDraftIsRefused(t *testing.T) {
	e, store := newTestServer(t)

	id, _ := advanceToReview(t, e)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/draft", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var draftResp apihttp.SaveDraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draftResp))

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/confirm", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.batches, 1)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/resume", apihttp.ResumeSessionRequest{
		DraftID: draftResp.DraftID,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_ResetSession(t *testing.T) {
	e, _ := newTestServer(t)

	id, _ := advanceToReview(t, e)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeSession(t, rec)
	assert.Equal(t, int(session.StepSourceSelection), resp.CurrentStep)
	assert.Empty(t, resp.Stops)
	assert.Empty(t, resp.BatchName)
	assert.False(t, resp.Route.Optimized)
}
