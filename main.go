// Package main is the entry point for the Geocheck app
package main

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/syntaxkim/project1/internal/api"
	"github.com/syntaxkim/project1/internal/api/middleware"
	"github.com/syntaxkim/project1/internal/config"
	"github.com/syntaxkim/project1/internal/repository"
	"github.com/syntaxkim/project1/internal/service"
	"github.com/syntaxkim/project1/pkg/utils/zaplogger"
)

func main() {
	// Setup logger
	defer zaplogger.Sync()

	zaplogger.Info(config.SingleLine)
	zaplogger.Info(config.AppName + " " + config.AppVersion)

	// Load configuration; a missing database DSN or weather credential
	// aborts startup here.
	cfg, err := config.Get()
	if err != nil {
		zaplogger.Fatal("failed to load configuration", zaplogger.Fields{"error": err})
	}
	zaplogger.SetLogLevel(cfg.ServerLogLevel)
	zaplogger.Info("  * configuration loaded")

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Setup middleware and templates
	middleware.SetupLoggerMiddleware(e)

	renderer, err := api.NewRenderer(cfg.TemplatesGlob)
	if err != nil {
		zaplogger.Fatal("failed to parse templates", zaplogger.Fields{"error": err})
	}
	e.Renderer = renderer

	// Connect to Postgres
	db, err := repository.ConnectPostgres(cfg)
	if err != nil {
		zaplogger.Fatal("failed to connect to Postgres", zaplogger.Fields{"error": err})
	}

	// Connect to Redis
	redisClient, err := repository.ConnectRedis(cfg)
	if err != nil {
		zaplogger.Fatal("failed to connect to Redis", zaplogger.Fields{"error": err})
	}

	// Setup routes
	if err := api.SetupRoutes(e, cfg, db, redisClient); err != nil {
		zaplogger.Fatal("failed to setup routes", zaplogger.Fields{"error": err})
	}

	// Setup and start cron jobs
	cronService := service.NewCronService(cfg, db)
	cronService.Start()

	// Bridge new check-ins from Postgres to the Redis feed channel
	go service.PublishCheckinsToRedisChannel(redisClient, cfg.PostgresDsn)

	// Start the server
	startServer(e, cfg)
}

// startServer starts the Echo server on the specified port
func startServer(e *echo.Echo, cfg *config.Config) {
	startupMessage := fmt.Sprintf("%s %s Server [:%s] started", config.AppName, config.AppVersion, cfg.ServerPort)

	zaplogger.Info(config.SingleLine)
	zaplogger.Info(startupMessage)
	zaplogger.Info(config.SingleLine)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
