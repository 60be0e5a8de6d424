package queries

import (
	"context"

	"batching/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFacilitiesQueryHandler retrieves the facility directory from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetFacilitiesQueryHandler struct {
	db *gorm.DB
}

// NewGetFacilitiesQueryHandler creates a handler for facility directory
// queries. Requires a GORM database connection for query execution.
func NewGetFacilitiesQueryHandler(db *gorm.DB) GetFacilitiesQueryHandler {
	return GetFacilitiesQueryHandler{db: db}
}

// Handle executes the query to retrieve all facilities sorted by name.
func (h GetFacilitiesQueryHandler) Handle(
	ctx context.Context,
	query GetFacilitiesQuery,
) ([]GetFacilitiesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	facilities := make([]GetFacilitiesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			code,
			lga,
			zone,
			lat,
			lng
		FROM facilities
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var facility GetFacilitiesQueryResponse
		var id uuid.UUID
		var lat, lng float64

		err = rows.Scan(
			&id,
			&facility.Name,
			&facility.Code,
			&facility.LGA,
			&facility.Zone,
			&lat,
			&lng,
		)
		if err != nil {
			return nil, err
		}

		facilityID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		facility.ID = facilityID

		point, pointErr := kernel.NewGeoPoint(lat, lng)
		if pointErr != nil {
			return nil, pointErr
		}
		facility.Point = point
		facilities = append(facilities, facility)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return facilities, nil
}
