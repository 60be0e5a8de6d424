package directoryrepo

import (
	"context"
	"errors"

	"batching/internal/core/domain/model/kernel"
	"batching/internal/pkg/errs"

	"gorm.io/gorm"
)

// StartLocationTypeWarehouse and StartLocationTypeFacility name the directory
// a start location identifier resolves against.
const (
	StartLocationTypeWarehouse = "warehouse"
	StartLocationTypeFacility  = "facility"
)

// ErrUnknownStartLocationType is returned when a start location refers to a
// directory this adapter does not know.
var ErrUnknownStartLocationType = errors.New("unknown start location type")

// GormLocationDirectory implements LocationDirectory over the facility and
// warehouse tables. Route optimization uses it to turn facility identities
// into coordinates.
type GormLocationDirectory struct {
	db *gorm.DB
}

// NewGormLocationDirectory creates a directory reader over the given database.
func NewGormLocationDirectory(db *gorm.DB) *GormLocationDirectory {
	return &GormLocationDirectory{db: db}
}

// FacilityPoints resolves coordinates for the given facilities. Facilities
// missing from the directory are simply absent from the result; the caller
// decides whether that is an error.
func (d *GormLocationDirectory) FacilityPoints(
	ctx context.Context,
	facilityIDs []kernel.UUID,
) (map[kernel.UUID]kernel.GeoPoint, error) {
	points := make(map[kernel.UUID]kernel.GeoPoint, len(facilityIDs))
	if len(facilityIDs) == 0 {
		return points, nil
	}

	ids := make([]any, 0, len(facilityIDs))
	for _, id := range facilityIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, id.Bytes())
	}

	var dtos []FacilityDTO
	if err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
		if err != nil {
			return nil, err
		}
		points[id] = point
	}

	return points, nil
}

// StartPoint resolves the coordinates of a route's starting location. The
// location type selects which directory the identifier resolves against.
func (d *GormLocationDirectory) StartPoint(
	ctx context.Context,
	id kernel.UUID,
	locationType string,
) (kernel.GeoPoint, error) {
	if err := id.Validate(); err != nil {
		return kernel.GeoPoint{}, err
	}

	var lat, lng float64
	switch locationType {
	case StartLocationTypeWarehouse:
		var dto WarehouseDTO
		if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return kernel.GeoPoint{}, errs.NewObjectNotFoundError("warehouse", id.String())
			}
			return kernel.GeoPoint{}, err
		}
		lat, lng = dto.Lat, dto.Lng
	case StartLocationTypeFacility:
		var dto FacilityDTO
		if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return kernel.GeoPoint{}, errs.NewObjectNotFoundError("facility", id.String())
			}
			return kernel.GeoPoint{}, err
		}
		lat, lng = dto.Lat, dto.Lng
	default:
		return kernel.GeoPoint{}, ErrUnknownStartLocationType
	}

	return kernel.NewGeoPoint(lat, lng)
}
