// Package batchrepo provides data transfer objects and mapping functions for batch persistence.
// This package implements the repository pattern for the batch domain aggregate, handling
// the conversion between domain entities and database representations.
package batchrepo

import (
	"encoding/json"
	"time"

	"batching/internal/core/domain/model/batch"
	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/route"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BatchDTO represents the database structure for persisting batch aggregates.
// Slot placements and the optimized route are stored as JSONB payloads since
// a batch is written once at commit time and read back as a whole.
type BatchDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PreBatchID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name        string     `gorm:"type:varchar(255);not null"`
	VehicleID   uuid.UUID  `gorm:"type:uuid;not null"`
	DriverID    *uuid.UUID `gorm:"type:uuid"`
	Priority    string     `gorm:"type:varchar(16);not null"`
	Placements  []byte     `gorm:"type:jsonb"`
	RoutePoints []byte     `gorm:"type:jsonb"`
	// RequisitionIDs is denormalized from the placements so fulfillment
	// reports can find a requisition's batch without unpacking JSONB.
	RequisitionIDs       pq.StringArray `gorm:"type:text[]"`
	TotalDistanceKm      float64        `gorm:"type:numeric"`
	EstimatedDurationMin int            `gorm:"type:int"`
	Notes                string         `gorm:"type:text"`
	CreatedAt            time.Time      `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for batch entities.
// Overrides GORM's default naming convention to use "batches" instead of "batch_dtos".
func (BatchDTO) TableName() string {
	return "batches"
}

// placementJSON is the JSONB shape of one slot placement.
type placementJSON struct {
	SlotKey        string    `json:"slot_key"`
	FacilityID     uuid.UUID `json:"facility_id"`
	FacilityName   string    `json:"facility_name"`
	RequisitionIDs []string  `json:"requisition_ids,omitempty"`
}

// routePointJSON is the JSONB shape of one optimized route point.
type routePointJSON struct {
	FacilityID uuid.UUID `json:"facility_id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Sequence   int       `json:"sequence"`
}

// fromDomain converts a batch domain aggregate to its database representation.
func fromDomain(aggregate *batch.Batch) (BatchDTO, error) {
	placements := make([]placementJSON, 0, len(aggregate.Placements()))
	var requisitionIDs pq.StringArray
	for _, p := range aggregate.Placements() {
		placements = append(placements, placementJSON{
			SlotKey:        p.SlotKey(),
			FacilityID:     p.FacilityID().Bytes(),
			FacilityName:   p.FacilityName(),
			RequisitionIDs: p.RequisitionIDs(),
		})
		requisitionIDs = append(requisitionIDs, p.RequisitionIDs()...)
	}
	placementsPayload, err := json.Marshal(placements)
	if err != nil {
		return BatchDTO{}, err
	}

	routePoints := make([]routePointJSON, 0, len(aggregate.RoutePoints()))
	for _, p := range aggregate.RoutePoints() {
		routePoints = append(routePoints, routePointJSON{
			FacilityID: p.FacilityID().Bytes(),
			Lat:        p.Point().Lat(),
			Lng:        p.Point().Lng(),
			Sequence:   p.Sequence(),
		})
	}
	routePayload, err := json.Marshal(routePoints)
	if err != nil {
		return BatchDTO{}, err
	}

	var driverID *uuid.UUID
	if aggregate.DriverID().Validate() == nil {
		raw := aggregate.DriverID().Bytes()
		driverID = &raw
	}

	return BatchDTO{
		ID:                   aggregate.ID().Bytes(),
		PreBatchID:           aggregate.PreBatchID().Bytes(),
		Name:                 aggregate.Name(),
		VehicleID:            aggregate.VehicleID().Bytes(),
		DriverID:             driverID,
		Priority:             aggregate.Priority().String(),
		Placements:           placementsPayload,
		RoutePoints:          routePayload,
		RequisitionIDs:       requisitionIDs,
		TotalDistanceKm:      aggregate.TotalDistanceKm(),
		EstimatedDurationMin: aggregate.EstimatedDurationMin(),
		Notes:                aggregate.Notes(),
		CreatedAt:            aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to a batch domain aggregate.
func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	preBatchID, err := kernel.UUIDFromBytes(dto.PreBatchID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	var driverID kernel.UUID
	if dto.DriverID != nil {
		driverID, err = kernel.UUIDFromBytes((*dto.DriverID)[:])
		if err != nil {
			return nil, err
		}
	}

	priority, err := batch.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	placements, err := placementsToDomain(dto.Placements)
	if err != nil {
		return nil, err
	}

	routePoints, err := routePointsToDomain(dto.RoutePoints)
	if err != nil {
		return nil, err
	}

	return batch.RestoreBatch(
		id,
		preBatchID,
		dto.Name,
		vehicleID,
		driverID,
		priority,
		placements,
		routePoints,
		dto.TotalDistanceKm,
		dto.EstimatedDurationMin,
		dto.Notes,
		dto.CreatedAt,
	)
}

// placementsToDomain reconstructs slot placements from the JSONB payload.
func placementsToDomain(payload []byte) ([]batch.SlotPlacement, error) {
	if len(payload) == 0 {
		return nil, nil
	}

	var raw []placementJSON
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}

	placements := make([]batch.SlotPlacement, 0, len(raw))
	for _, item := range raw {
		facilityID, err := kernel.UUIDFromBytes(item.FacilityID[:])
		if err != nil {
			return nil, err
		}

		placement, err := batch.NewSlotPlacement(item.SlotKey, facilityID, item.FacilityName, item.RequisitionIDs)
		if err != nil {
			return nil, err
		}
		placements = append(placements, placement)
	}

	return placements, nil
}

// routePointsToDomain reconstructs the optimized route from the JSONB payload.
func routePointsToDomain(payload []byte) ([]route.RoutePoint, error) {
	if len(payload) == 0 {
		return nil, nil
	}

	var raw []routePointJSON
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}

	points := make([]route.RoutePoint, 0, len(raw))
	for _, item := range raw {
		facilityID, err := kernel.UUIDFromBytes(item.FacilityID[:])
		if err != nil {
			return nil, err
		}

		geo, err := kernel.NewGeoPoint(item.Lat, item.Lng)
		if err != nil {
			return nil, err
		}

		point, err := route.NewRoutePoint(facilityID, geo, item.Sequence)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}

	return points, nil
}
