// Package prebatchrepo provides data transfer objects and mapping functions for draft persistence.
// This package implements the repository pattern for the prebatch domain aggregate, handling
// the conversion between domain entities and database representations.
package prebatchrepo

import (
	"encoding/json"
	"time"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/core/domain/model/prebatch"
	"batching/internal/core/domain/model/stop"

	"github.com/google/uuid"
)

// PreBatchDTO represents the database structure for persisting draft aggregates.
// The ordered stop list and the optimizer toggles are stored as JSONB payloads
// since they are only ever read back as a whole.
type PreBatchDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Status             int        `gorm:"type:int;not null;index"`
	SourceMethod       string     `gorm:"type:varchar(64);not null"`
	SourceSubOption    string     `gorm:"type:varchar(64)"`
	ScheduleTitle      string     `gorm:"type:varchar(255);not null"`
	StartLocationID    *uuid.UUID `gorm:"type:uuid"`
	StartLocationType  string     `gorm:"type:varchar(32)"`
	PlannedDate        time.Time  `gorm:"type:timestamptz"`
	TimeWindow         string     `gorm:"type:varchar(64)"`
	Stops              []byte     `gorm:"type:jsonb"`
	AIOptions          []byte     `gorm:"column:ai_options;type:jsonb"`
	SuggestedVehicleID *uuid.UUID `gorm:"type:uuid"`
	Notes              string     `gorm:"type:text"`
	SavedStep          int        `gorm:"type:int;not null"`
	CreatedAt          time.Time  `gorm:"type:timestamptz;not null"`
	UpdatedAt          time.Time  `gorm:"type:timestamptz;not null;index"`
}

// TableName specifies the database table name for draft entities.
// Overrides GORM's default naming convention to use "pre_batches" instead of "pre_batch_dtos".
func (PreBatchDTO) TableName() string {
	return "pre_batches"
}

// stopJSON is the JSONB shape of one stop inside the Stops payload.
type stopJSON struct {
	FacilityID     uuid.UUID `json:"facility_id"`
	FacilityName   string    `json:"facility_name"`
	FacilityCode   string    `json:"facility_code,omitempty"`
	LGA            string    `json:"lga,omitempty"`
	Zone           string    `json:"zone,omitempty"`
	RequisitionIDs []string  `json:"requisition_ids,omitempty"`
	SlotDemand     int       `json:"slot_demand"`
	WeightKg       float64   `json:"weight_kg,omitempty"`
	VolumeM3       float64   `json:"volume_m3,omitempty"`
}

// aiOptionsJSON is the JSONB shape of the optimizer toggles.
type aiOptionsJSON struct {
	MinimizeDistance    bool `json:"minimize_distance"`
	ConsiderTraffic     bool `json:"consider_traffic"`
	PrioritizeColdChain bool `json:"prioritize_cold_chain"`
	BalanceLoad         bool `json:"balance_load"`
}

// fromDomain converts a draft domain aggregate to its database representation.
func fromDomain(preBatch *prebatch.PreBatch) (PreBatchDTO, error) {
	stops := make([]stopJSON, 0, len(preBatch.Stops()))
	for _, s := range preBatch.Stops() {
		stops = append(stops, stopJSON{
			FacilityID:     s.FacilityID().Bytes(),
			FacilityName:   s.FacilityName(),
			FacilityCode:   s.FacilityCode(),
			LGA:            s.LGA(),
			Zone:           s.Zone(),
			RequisitionIDs: s.RequisitionIDs(),
			SlotDemand:     s.SlotDemand(),
			WeightKg:       s.WeightKg(),
			VolumeM3:       s.VolumeM3(),
		})
	}
	stopsPayload, err := json.Marshal(stops)
	if err != nil {
		return PreBatchDTO{}, err
	}

	var optionsPayload []byte
	if options := preBatch.AIOptions(); options != nil {
		optionsPayload, err = json.Marshal(aiOptionsJSON{
			MinimizeDistance:    options.MinimizeDistance,
			ConsiderTraffic:     options.ConsiderTraffic,
			PrioritizeColdChain: options.PrioritizeColdChain,
			BalanceLoad:         options.BalanceLoad,
		})
		if err != nil {
			return PreBatchDTO{}, err
		}
	}

	var startLocationID *uuid.UUID
	if preBatch.StartLocationID().Validate() == nil {
		raw := preBatch.StartLocationID().Bytes()
		startLocationID = &raw
	}

	var suggestedVehicleID *uuid.UUID
	if preBatch.SuggestedVehicleID().Validate() == nil {
		raw := preBatch.SuggestedVehicleID().Bytes()
		suggestedVehicleID = &raw
	}

	return PreBatchDTO{
		ID:                 preBatch.ID().Bytes(),
		Status:             int(preBatch.Status()),
		SourceMethod:       preBatch.SourceMethod(),
		SourceSubOption:    preBatch.SourceSubOption(),
		ScheduleTitle:      preBatch.ScheduleTitle(),
		StartLocationID:    startLocationID,
		StartLocationType:  preBatch.StartLocationType(),
		PlannedDate:        preBatch.PlannedDate(),
		TimeWindow:         preBatch.TimeWindow(),
		Stops:              stopsPayload,
		AIOptions:          optionsPayload,
		SuggestedVehicleID: suggestedVehicleID,
		Notes:              preBatch.Notes(),
		SavedStep:          preBatch.SavedStep(),
		CreatedAt:          preBatch.CreatedAt(),
		UpdatedAt:          preBatch.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to a draft domain aggregate.
func toDomain(dto PreBatchDTO) (*prebatch.PreBatch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status := prebatch.Status(dto.Status)
	if err = status.Validate(); err != nil {
		return nil, err
	}

	stops, err := stopsToDomain(dto.Stops)
	if err != nil {
		return nil, err
	}

	preBatch, err := prebatch.RestorePreBatch(
		id,
		status,
		dto.SourceMethod,
		dto.ScheduleTitle,
		dto.PlannedDate,
		stops,
		dto.SavedStep,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	preBatch.
		WithSourceSubOption(dto.SourceSubOption).
		WithTimeWindow(dto.TimeWindow).
		WithNotes(dto.Notes)

	if dto.StartLocationID != nil {
		startLocationID, idErr := kernel.UUIDFromBytes((*dto.StartLocationID)[:])
		if idErr != nil {
			return nil, idErr
		}
		preBatch.WithStartLocation(startLocationID, dto.StartLocationType)
	}

	if dto.SuggestedVehicleID != nil {
		suggestedVehicleID, idErr := kernel.UUIDFromBytes((*dto.SuggestedVehicleID)[:])
		if idErr != nil {
			return nil, idErr
		}
		preBatch.WithSuggestedVehicle(suggestedVehicleID)
	}

	if len(dto.AIOptions) > 0 {
		var options aiOptionsJSON
		if jsonErr := json.Unmarshal(dto.AIOptions, &options); jsonErr != nil {
			return nil, jsonErr
		}
		preBatch.WithAIOptions(&prebatch.AIOptions{
			MinimizeDistance:    options.MinimizeDistance,
			ConsiderTraffic:     options.ConsiderTraffic,
			PrioritizeColdChain: options.PrioritizeColdChain,
			BalanceLoad:         options.BalanceLoad,
		})
	}

	return preBatch, nil
}

// stopsToDomain reconstructs the ordered stop list from the JSONB payload.
func stopsToDomain(payload []byte) ([]*stop.Stop, error) {
	if len(payload) == 0 {
		return nil, nil
	}

	var raw []stopJSON
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}

	stops := make([]*stop.Stop, 0, len(raw))
	for _, item := range raw {
		facilityID, err := kernel.UUIDFromBytes(item.FacilityID[:])
		if err != nil {
			return nil, err
		}

		s, err := stop.RestoreStop(
			facilityID,
			item.FacilityName,
			item.FacilityCode,
			item.LGA,
			item.Zone,
			item.RequisitionIDs,
			item.SlotDemand,
			item.WeightKg,
			item.VolumeM3,
		)
		if err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}

	return stops, nil
}
