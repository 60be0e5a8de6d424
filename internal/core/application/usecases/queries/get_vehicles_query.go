package queries

import (
	"errors"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/pkg/guard"
)

var ErrGetVehiclesQueryIsNotConstructed = errors.New(
	"GetVehiclesQuery must be created via NewGetVehiclesQuery constructor",
)

// GetVehiclesQuery retrieves the vehicle fleet with each vehicle's tier
// layout. The layout is what the vehicle step turns into a slot board.
type GetVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetVehiclesQuery creates a query to retrieve all vehicles.
func NewGetVehiclesQuery() GetVehiclesQuery {
	return GetVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetVehiclesQueryIsNotConstructed)
}

// TierResponse describes one tier of a vehicle's layout.
type TierResponse struct {
	Name       string  `json:"name"`
	SortOrder  int     `json:"sort_order"`
	SlotCount  int     `json:"slot_count"`
	CapacityKg float64 `json:"capacity_kg"`
	CapacityM3 float64 `json:"capacity_m3"`
}

// GetVehiclesQueryResponse represents one vehicle in the read model.
type GetVehiclesQueryResponse struct {
	ID                 kernel.UUID
	Name               string
	RegistrationNumber string
	Tiers              []TierResponse
}
