package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/technova-labs/portal-go/docs"
	"github.com/technova-labs/portal-go/internal/api/handlers"
	"github.com/technova-labs/portal-go/internal/api/middleware"
	"github.com/technova-labs/portal-go/internal/api/routes"
	"github.com/technova-labs/portal-go/internal/application"
	"github.com/technova-labs/portal-go/internal/config"
	"github.com/technova-labs/portal-go/internal/delivery"
	"github.com/technova-labs/portal-go/internal/repository"
	"github.com/technova-labs/portal-go/pkg/logger"
)

// @title TechNova Portal API
// @version 1.0
// @description Contact intake and client-portal backend for the TechNova consulting site.
// @BasePath /
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	log := logger.NewLogger()
	defer log.Sync()

	// Initialize JWT signing key and validator field naming
	middleware.Init()
	handlers.InitValidation()

	deliveryCfg, err := delivery.LoadConfig(config.DeliveryConfigPath)
	if err != nil {
		log.Fatal("Failed to load delivery config", zap.Error(err))
	}
	notifier, err := delivery.FromConfig(deliveryCfg, log)
	if err != nil {
		log.Fatal("Failed to build delivery notifier", zap.Error(err))
	}

	// The store lives for the process lifetime; everything is gone on restart.
	repos := repository.New()
	services := application.New(repos, notifier, log)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(router, services)

	port := ":" + config.ServerPort
	log.Info("Starting API server", zap.String("addr", port))
	if err := router.Run(port); err != nil {
		log.Fatal("Failed to start", zap.Error(err))
	}
}
