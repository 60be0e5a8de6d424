package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"batching/cmd"
	apihttp "batching/internal/adapters/in/http"
	"batching/internal/adapters/out/postgres/batchrepo"
	"batching/internal/adapters/out/postgres/directoryrepo"
	"batching/internal/adapters/out/postgres/prebatchrepo"
	"batching/internal/core/application/sessions"
	"batching/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultDraftRetention = 72 * time.Hour

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	migrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateExpireDraftsCommandHandler(),
		draftRetention(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		RouteOptimizerURL:   goDotEnvVariable("ROUTE_OPTIMIZER_URL"),
		DraftRetentionHours: goDotEnvVariable("DRAFT_RETENTION_HOURS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func draftRetention(configs cmd.Config) time.Duration {
	if configs.DraftRetentionHours == "" {
		return defaultDraftRetention
	}

	hours, err := strconv.Atoi(configs.DraftRetentionHours)
	if err != nil || hours <= 0 {
		log.Fatalf("Invalid DRAFT_RETENTION_HOURS: %q", configs.DraftRetentionHours)
	}
	return time.Duration(hours) * time.Hour
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&prebatchrepo.PreBatchDTO{},
		&batchrepo.BatchDTO{},
		&directoryrepo.FacilityDTO{},
		&directoryrepo.VehicleDTO{},
		&directoryrepo.DriverDTO{},
		&directoryrepo.WarehouseDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := apihttp.NewServer(
		sessions.NewRegistry(),
		app.CreateSaveDraftCommandHandler(),
		app.CreateConfirmBatchCommandHandler(),
		app.CreateOptimizeRouteCommandHandler(),
		app.CreatePreBatchUoWFactory(),
		app.CreateGetFacilitiesQueryHandler(),
		app.CreateGetVehiclesQueryHandler(),
		app.CreateGetDriversQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
