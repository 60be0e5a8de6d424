// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/pkg/guard"
)

var ErrGetFacilitiesQueryIsNotConstructed = errors.New(
	"GetFacilitiesQuery must be created via NewGetFacilitiesQuery constructor",
)

// GetFacilitiesQuery retrieves the facility directory: every deliverable
// facility with its attributes and location. The planning UI uses it to
// populate the working set picker.
type GetFacilitiesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFacilitiesQuery creates a query to retrieve all facilities.
func NewGetFacilitiesQuery() GetFacilitiesQuery {
	return GetFacilitiesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetFacilitiesQuery) Validate() error {
	return q.guard.Validate(ErrGetFacilitiesQueryIsNotConstructed)
}

// GetFacilitiesQueryResponse represents one facility in the read model.
type GetFacilitiesQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Code  string
	LGA   string
	Zone  string
	Point kernel.GeoPoint
}
