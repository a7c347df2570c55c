package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"marketplace/cmd"
	adapters_http "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres/offerrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/reviewrepo"
	"marketplace/internal/adapters/out/postgres/statsrepo"
	"marketplace/internal/generated/servers"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
	)

	jobManager := startJobs(&app, configs.StatsReconcileSchedule)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		StatsReconcileSchedule: goDotEnvVariable("STATS_RECONCILE_SCHEDULE"),
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

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError maps driver errors like unique violations onto
	// gorm sentinels, which the repositories rely on.
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&reviewrepo.ReviewDTO{},
		&offerrepo.PackageDTO{},
		&statsrepo.BusinessStatsDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot, schedule string) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateRecomputeStatsCommandHandler(),
		schedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := adapters_http.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateCreateReviewCommandHandler(),
		app.CreateUpdateReviewCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetBusinessStatsQueryHandler(),
		app.CreateGetPlatformStatsQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
