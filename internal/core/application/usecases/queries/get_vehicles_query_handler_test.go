package queries_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"batching/internal/adapters/out/postgres/directoryrepo"
	"batching/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetVehiclesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetVehiclesQueryHandler
}

func (suite *GetVehiclesQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&directoryrepo.VehicleDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetVehiclesQueryHandler(db)
}

func (suite *GetVehiclesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetVehiclesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE vehicles").Error
	suite.Require().NoError(err)
}

func (suite *GetVehiclesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetVehiclesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetVehiclesQueryHandlerTestSuite) TestHandle_WithVehicles_ReturnsLayouts() {
	suite.seedVehicle("Refrigerated Van", "ABJ-142-XY", []queries.TierResponse{
		{Name: "Upper", SortOrder: 1, SlotCount: 4, CapacityKg: 200, CapacityM3: 1.2},
		{Name: "Lower", SortOrder: 2, SlotCount: 6, CapacityKg: 350, CapacityM3: 2.0},
	})
	suite.seedVehicle("Box Truck", "ABJ-077-KD", []queries.TierResponse{
		{Name: "Main", SortOrder: 1, SlotCount: 10, CapacityKg: 900, CapacityM3: 8.5},
	})

	query := queries.NewGetVehiclesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("Box Truck", result[0].Name)
	suite.Equal("ABJ-077-KD", result[0].RegistrationNumber)
	suite.Require().Len(result[0].Tiers, 1)
	suite.Equal("Main", result[0].Tiers[0].Name)
	suite.Equal(10, result[0].Tiers[0].SlotCount)

	suite.Equal("Refrigerated Van", result[1].Name)
	suite.Require().Len(result[1].Tiers, 2)
	suite.Equal("Upper", result[1].Tiers[0].Name)
	suite.Equal(1, result[1].Tiers[0].SortOrder)
	suite.Equal(4, result[1].Tiers[0].SlotCount)
	suite.InDelta(1.2, result[1].Tiers[0].CapacityM3, 0.0001)
	suite.Equal("Lower", result[1].Tiers[1].Name)
}

func (suite *GetVehiclesQueryHandlerTestSuite) TestHandle_VehicleWithoutLayout_ReturnsEmptyTiers() {
	dto := directoryrepo.VehicleDTO{
		ID:                 uuid.New(),
		Name:               "Flatbed",
		RegistrationNumber: "ABJ-001-AA",
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	query := queries.NewGetVehiclesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Empty(result[0].Tiers)
}

func (suite *GetVehiclesQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetVehiclesQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetVehiclesQuery constructor")
}

func (suite *GetVehiclesQueryHandlerTestSuite) seedVehicle(
	name, registration string,
	tiers []queries.TierResponse,
) {
	payload, err := json.Marshal(tiers)
	suite.Require().NoError(err)

	dto := directoryrepo.VehicleDTO{
		ID:                 uuid.New(),
		Name:               name,
		RegistrationNumber: registration,
		Tiers:              payload,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func TestGetVehiclesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetVehiclesQueryHandlerTestSuite))
}
