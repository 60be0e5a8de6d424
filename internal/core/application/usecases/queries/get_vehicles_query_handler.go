package queries

import (
	"context"
	"encoding/json"

	"batching/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVehiclesQueryHandler retrieves the vehicle fleet from the database.
type GetVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetVehiclesQueryHandler creates a handler for vehicle fleet queries.
func NewGetVehiclesQueryHandler(db *gorm.DB) GetVehiclesQueryHandler {
	return GetVehiclesQueryHandler{db: db}
}

// Handle executes the query to retrieve all vehicles sorted by name. The
// tiers column holds the layout as a JSON array.
func (h GetVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetVehiclesQuery,
) ([]GetVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			registration_number,
			tiers
		FROM vehicles
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v GetVehiclesQueryResponse
		var id uuid.UUID
		var tiersPayload []byte

		err = rows.Scan(
			&id,
			&v.Name,
			&v.RegistrationNumber,
			&tiersPayload,
		)
		if err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		v.ID = vehicleID

		if len(tiersPayload) > 0 {
			if jsonErr := json.Unmarshal(tiersPayload, &v.Tiers); jsonErr != nil {
				return nil, jsonErr
			}
		}
		vehicles = append(vehicles, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
