package main

import (
	"fmt"
	"log/slog"
	"os"

	"dispatch/cmd"
	httpserver "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/agentrepo"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := startJobs(&app, configs)
	if jobManager != nil {
		defer jobManager.StopAll()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:             envOr("HTTP_PORT", "8080"),
		DBHost:               envOr("DB_HOST", "localhost"),
		DBPort:               envOr("DB_PORT", "5432"),
		DBUser:               envOr("DB_USER", "postgres"),
		DBPassword:           envOr("DB_PASSWORD", "postgres"),
		DBName:               envOr("DB_NAME", "dispatch"),
		DBSslMode:            envOr("DB_SSLMODE", "disable"),
		AssignmentJobEnabled: envOr("ASSIGNMENT_JOB_ENABLED", "true") == "true",
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&deliveryrepo.DeliveryDTO{}, &agentrepo.AgentDTO{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	if !configs.AssignmentJobEnabled {
		return nil
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetPendingDeliveriesQueryHandler(),
		app.CreateAssignBestAgentCommandHandler(),
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := httpserver.NewServer(
		app.CreateCreateDeliveryCommandHandler(),
		app.CreateCreateAgentCommandHandler(),
		app.CreateAssignDeliveryCommandHandler(),
		app.CreateAssignBestAgentCommandHandler(),
		app.CreatePickUpDeliveryCommandHandler(),
		app.CreateCompleteDeliveryCommandHandler(),
		app.CreateCancelDeliveryCommandHandler(),
		app.CreateFailDeliveryCommandHandler(),
		app.CreateChangeDeliveryPriorityCommandHandler(),
		app.CreateUpdateAgentLocationCommandHandler(),
		app.CreateUpdateAgentStatusCommandHandler(),
		app.CreateRateAgentCommandHandler(),
		app.CreateGetPendingDeliveriesQueryHandler(),
		app.CreateGetAllAgentsQueryHandler(),
		app.CreateFindSuitableAgentsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
