package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"osonish/cmd"
	internalhttp "osonish/internal/adapters/in/http"
	"osonish/internal/adapters/out/amqp"
	"osonish/internal/adapters/out/postgres/orderrepo"
	"osonish/internal/core/ports"
	"osonish/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	dispatcher := createDispatcher(configs, logger)
	if closer, ok := dispatcher.(*amqp.RabbitNotificationDispatcher); ok {
		defer closer.Close()
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		dispatcher,
		logger,
	)

	jobManager := jobs.NewJobManager(app.CreateAutoTransitionOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		AmqpURL:    goDotEnvVariable("AMQP_URL"),
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

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

// createDispatcher returns nil when no broker is configured; the cutoff
// engine then skips notifications.
func createDispatcher(configs cmd.Config, logger *slog.Logger) ports.NotificationDispatcher {
	if configs.AmqpURL == "" {
		logger.Info("AMQP_URL is empty, transition notifications disabled")
		return nil
	}

	dispatcher, err := amqp.NewRabbitNotificationDispatcher(configs.AmqpURL)
	if err != nil {
		log.Fatalf("Error connecting to message broker: %v", err)
	}
	return dispatcher
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := internalhttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAutoTransitionOrdersCommandHandler(),
		app.CreateGetOrdersDueQueryHandler(),
		app.CreateGetAutoTransitionedOrdersQueryHandler(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.POST("/api/v1/orders", server.CreateOrder)
	e.GET("/api/v1/orders/due", server.GetOrdersDue)
	e.GET("/api/v1/orders/auto-transitioned", server.GetAutoTransitionedOrders)
	e.POST("/api/v1/auto-transitions", server.RunAutoTransitions)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
