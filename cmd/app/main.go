package main

import (
	"fmt"
	"net/http"
	"os"

	"ownplate/cmd"
	httpin "ownplate/internal/adapters/in/http"
	"ownplate/internal/adapters/out/i18n"
	"ownplate/internal/adapters/out/postgres/orderrepo"
	"ownplate/internal/adapters/out/postgres/restaurantrepo"
	"ownplate/internal/adapters/out/rabbitmq"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	configs := getConfigs(sugar)

	gormDB, err := gorm.Open(postgres.Open(postgresDSN(configs)), &gorm.Config{})
	if err != nil {
		sugar.Fatalw("Failed to connect to database", "error", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &restaurantrepo.RestaurantDTO{}); err != nil {
		sugar.Fatalw("Failed to migrate database", "error", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	publisher, err := rabbitmq.NewNotificationPublisher(configs.AmqpURL, configs.AmqpExchange)
	if err != nil {
		sugar.Fatalw("Failed to connect to RabbitMQ", "error", err)
	}
	defer publisher.Close()

	app, err := cmd.NewCompositionRoot(
		configs,
		gormDB,
		redisClient,
		i18n.NewCatalog(configs.RegionLocale),
		publisher,
		sugar,
	)
	if err != nil {
		sugar.Fatalw("Failed to build application", "error", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		sugar.Fatalw("Failed to start jobs", "error", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs, sugar)
}

func getConfigs(sugar *zap.SugaredLogger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		sugar.Infow("No .env file found, relying on environment")
	}

	return cmd.Config{
		HTTPPort:            os.Getenv("HTTP_PORT"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              os.Getenv("DB_PORT"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           os.Getenv("DB_SSLMODE"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		AmqpURL:             os.Getenv("AMQP_URL"),
		AmqpExchange:        os.Getenv("AMQP_EXCHANGE"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		SMSSenderName:       os.Getenv("SMS_SENDER_NAME"),
		RegionMultiple:      os.Getenv("REGION_MULTIPLE"),
		RegionLocale:        os.Getenv("REGION_LOCALE"),
		StaleOrderThreshold: os.Getenv("STALE_ORDER_THRESHOLD"),
	}
}

func postgresDSN(configs cmd.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, sugar *zap.SugaredLogger) {
	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)
	server.RegisterRoutes(e, httpin.JWTAuth([]byte(configs.JWTSecret)))

	sugar.Infow("Starting HTTP server", "port", configs.HTTPPort)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
