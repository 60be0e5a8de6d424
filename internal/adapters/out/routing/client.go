// Package routing provides the HTTP client for the external route
// optimization service. The optimizer takes the working set, a start
// location, and the optimizer toggles, and returns a visiting order with
// distance and duration totals.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/route"
	"batching/internal/core/ports"

	"github.com/google/uuid"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// OptimizerClient implements RouteOptimizer against the optimization
// service's HTTP API.
type OptimizerClient struct {
	baseURL string
	session *http.Client
}

// NewOptimizerClient creates a client for the optimization service at the
// given base URL.
func NewOptimizerClient(baseURL string, timeout time.Duration) *OptimizerClient {
	return &OptimizerClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: &http.Client{Timeout: timeout},
	}
}

type optimizeRequest struct {
	Start   pointJSON       `json:"start"`
	Stops   []stopJSON      `json:"stops"`
	Options optimizeOptions `json:"options"`
}

type pointJSON struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type stopJSON struct {
	FacilityID string  `json:"facility_id"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

type optimizeOptions struct {
	MinimizeDistance    bool `json:"minimize_distance"`
	ConsiderTraffic     bool `json:"consider_traffic"`
	PrioritizeColdChain bool `json:"prioritize_cold_chain"`
	BalanceLoad         bool `json:"balance_load"`
}

type optimizeResponse struct {
	Route                []routePointJSON `json:"route"`
	TotalDistanceKm      float64          `json:"total_distance_km"`
	EstimatedDurationMin int              `json:"estimated_duration_min"`
}

type routePointJSON struct {
	FacilityID string  `json:"facility_id"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Sequence   int     `json:"sequence"`
}

// Optimize submits the working set to the optimization service and maps the
// returned visiting order into domain route points.
func (c *OptimizerClient) Optimize(
	ctx context.Context,
	request ports.OptimizeRequest,
) (ports.OptimizeResult, error) {
	endpoint := c.baseURL + "/optimize"

	stops := make([]stopJSON, 0, len(request.Stops))
	for _, s := range request.Stops {
		stops = append(stops, stopJSON{
			FacilityID: s.FacilityID.String(),
			Lat:        s.Point.Lat(),
			Lng:        s.Point.Lng(),
		})
	}

	payload, err := json.Marshal(optimizeRequest{
		Start: pointJSON{Lat: request.Start.Lat(), Lng: request.Start.Lng()},
		Stops: stops,
		Options: optimizeOptions{
			MinimizeDistance:    request.Options.MinimizeDistance,
			ConsiderTraffic:     request.Options.ConsiderTraffic,
			PrioritizeColdChain: request.Options.PrioritizeColdChain,
			BalanceLoad:         request.Options.BalanceLoad,
		},
	})
	if err != nil {
		return ports.OptimizeResult{}, fmt.Errorf("marshal optimize request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		body := bytes.NewReader(payload)
		return c.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		return ports.OptimizeResult{}, fmt.Errorf("optimize request failed: %w", err)
	}
	defer resp.Body.Close()

	var or optimizeResponse
	if err = json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return ports.OptimizeResult{}, fmt.Errorf("decode optimize response: %w", err)
	}

	if len(or.Route) != len(request.Stops) {
		return ports.OptimizeResult{}, fmt.Errorf(
			"route length does not match stops: route=%d stops=%d",
			len(or.Route), len(request.Stops),
		)
	}

	points := make([]route.RoutePoint, 0, len(or.Route))
	for _, item := range or.Route {
		raw, parseErr := uuid.Parse(item.FacilityID)
		if parseErr != nil {
			return ports.OptimizeResult{}, fmt.Errorf("parse facility id %q: %w", item.FacilityID, parseErr)
		}

		facilityID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return ports.OptimizeResult{}, idErr
		}

		geo, geoErr := kernel.NewGeoPoint(item.Lat, item.Lng)
		if geoErr != nil {
			return ports.OptimizeResult{}, geoErr
		}

		point, pointErr := route.NewRoutePoint(facilityID, geo, item.Sequence)
		if pointErr != nil {
			return ports.OptimizeResult{}, pointErr
		}
		points = append(points, point)
	}

	return ports.OptimizeResult{
		Points:               points,
		TotalDistanceKm:      or.TotalDistanceKm,
		EstimatedDurationMin: or.EstimatedDurationMin,
	}, nil
}

func (c *OptimizerClient) newRequest(
	ctx context.Context,
	method string,
	url string,
	body io.Reader,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

func (c *OptimizerClient) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries transient failures (network errors, 5xx responses)
// using exponential backoff while respecting context cancellation.
func (c *OptimizerClient) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	const maxAttempts = 3
	backoff := 200 * time.Millisecond

	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case 429, 500, 502, 503, 504:
				retry = true
			}
		}

		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}
