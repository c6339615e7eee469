package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"shipping/cmd"
	"shipping/internal/adapters/out/postgres/addressrepo"
	"shipping/internal/adapters/out/postgres/cargorepo"
	"shipping/internal/adapters/out/postgres/clientrepo"
	"shipping/internal/adapters/out/postgres/refdata"
	"shipping/internal/adapters/out/postgres/transportrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck //flushing on exit
	logger := zapLogger.Sugar()

	ctx := context.Background()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(ctx, gormDB)

	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Error connecting to redis: %v", err)
	}

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, redisClient, logger)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:     goDotEnvVariable("REDIS_ADDR"),
		RedisPassword: goDotEnvVariable("REDIS_PASSWORD"),
		DraftTTLDays:  goDotEnvVariable("DRAFT_TTL_DAYS"),
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(ctx context.Context, gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&transportrepo.TransportationDTO{},
		&addressrepo.AddressDTO{},
		&cargorepo.CargoDTO{},
		&clientrepo.ClientDTO{},
		&refdata.CountryDTO{},
		&refdata.CityDTO{},
		&refdata.CurrencyDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err := refdata.Seed(ctx, gormDB); err != nil {
		log.Fatalf("Error seeding reference data: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateServer()
	server.RegisterRoutes(e, app.ClientRepository())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
