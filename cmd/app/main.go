package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"backoffice/cmd"
	httpin "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/postgres/auditrepo"
	"backoffice/internal/adapters/out/postgres/orderrepo"
	"backoffice/internal/adapters/out/postgres/productrepo"
	"backoffice/internal/adapters/out/rabbitmq"
	"backoffice/internal/adapters/out/redis"
	"backoffice/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	cartStore, err := redis.NewCartStore(configs.RedisAddr, configs.CartTTL)
	if err != nil {
		log.Fatalf("connecting to redis: %v", err)
	}
	defer cartStore.Close()

	var publisher *rabbitmq.Publisher
	if configs.AmqpURL != "" {
		publisher, err = rabbitmq.NewPublisher(configs.AmqpURL)
		if err != nil {
			log.Fatalf("connecting to rabbitmq: %v", err)
		}
		defer publisher.Close()
	}

	app := cmd.NewCompositionRoot(configs, gormDB, cartStore, publisher)

	jobManager := jobs.NewJobManager(
		app.CreateSweepStaleDraftsCommandHandler(),
		app.CreateGetLowStockProductsQueryHandler(),
		configs.StaleDraftAge,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("starting jobs: %v", err)
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
		AmqpURL:       goDotEnvVariable("AMQP_URL"),
		CartTTL:       durationEnvVariable("CART_TTL", 24*time.Hour),
		StaleDraftAge: durationEnvVariable("STALE_DRAFT_AGE", 7*24*time.Hour),
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

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("invalid duration in %s: %v", key, err)
	}
	return d
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&productrepo.ProductDTO{},
		&auditrepo.EntryDTO{},
	)
	if err != nil {
		log.Fatalf("migrating database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAddOrderItemCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateCreateProductCommandHandler(),
		app.CreateRestockProductCommandHandler(),
		app.CreateCheckoutCartCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetAuditTrailQueryHandler(),
		app.CreateGetLowStockProductsQueryHandler(),
		app.CartStore(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
