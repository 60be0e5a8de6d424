// Package directoryrepo provides read access to the reference directories the
// planning workflow draws from: facilities, vehicles, drivers, and warehouses.
// These tables are maintained by an upstream master-data process; this package
// only reads them.
package directoryrepo

import (
	"github.com/google/uuid"
)

// FacilityDTO represents one deliverable facility in the directory.
type FacilityDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
	Code string    `gorm:"type:varchar(64)"`
	LGA  string    `gorm:"type:varchar(128)"`
	Zone string    `gorm:"type:varchar(128)"`
	Lat  float64   `gorm:"type:numeric;not null"`
	Lng  float64   `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for facility entries.
func (FacilityDTO) TableName() string {
	return "facilities"
}

// VehicleDTO represents one fleet vehicle. The tiers column holds the
// vehicle's slot layout as a JSON array.
type VehicleDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"type:varchar(255);not null"`
	RegistrationNumber string    `gorm:"type:varchar(64)"`
	Tiers              []byte    `gorm:"type:jsonb"`
}

// TableName specifies the database table name for vehicle entries.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// DriverDTO represents one driver on the roster.
type DriverDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Phone string    `gorm:"type:varchar(32)"`
}

// TableName specifies the database table name for driver entries.
func (DriverDTO) TableName() string {
	return "drivers"
}

// WarehouseDTO represents one dispatch warehouse a route can start from.
type WarehouseDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
	Lat  float64   `gorm:"type:numeric;not null"`
	Lng  float64   `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for warehouse entries.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}
