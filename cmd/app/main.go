package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"tableside/cmd"
	httpserver "tableside/internal/adapters/in/http"
	"tableside/internal/adapters/out/postgres/menurepo"
	"tableside/internal/adapters/out/postgres/orderrepo"
	"tableside/internal/adapters/out/postgres/tablerepo"
	"tableside/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultOverdueThreshold = 30 * time.Minute

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	identityProvider, err := app.CreateIdentityProvider(configs.AuthTokens)
	if err != nil {
		log.Fatalf("Invalid AUTH_TOKENS: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateGetOverdueOrdersQueryHandler(),
		overdueThreshold(configs),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := httpserver.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateAddItemsCommandHandler(),
		app.CreateUpdateItemStatusCommandHandler(),
		app.CreateCreateMenuItemCommandHandler(),
		app.CreateCreateTableCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetMenuQueryHandler(),
		app.CreateGetKitchenQueueQueryHandler(),
		app.CreateGetReportQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e, identityProvider)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		AuthTokens:              goDotEnvVariable("AUTH_TOKENS"),
		OverdueThresholdMinutes: goDotEnvVariable("OVERDUE_THRESHOLD_MINUTES"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the table repository relies on.
	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&menurepo.MenuItemDTO{},
		&tablerepo.TableDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func overdueThreshold(configs cmd.Config) time.Duration {
	if configs.OverdueThresholdMinutes == "" {
		return defaultOverdueThreshold
	}

	minutes, err := strconv.Atoi(configs.OverdueThresholdMinutes)
	if err != nil || minutes <= 0 {
		log.Fatalf("OVERDUE_THRESHOLD_MINUTES must be a positive integer, got %q", configs.OverdueThresholdMinutes)
	}
	return time.Duration(minutes) * time.Minute
}
