package server

import (
	"log"
	"os"

	"github.com/cyphera/settlement-engine/apps/inspector/handlers"
	"github.com/cyphera/settlement-engine/libs/go/constants"
	"github.com/cyphera/settlement-engine/libs/go/helpers"
	"github.com/cyphera/settlement-engine/libs/go/logger"
	"github.com/cyphera/settlement-engine/libs/go/middleware"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	exitHandler   *handlers.ExitHandler
	healthHandler *handlers.HealthHandler

	commonServices *handlers.CommonServices
)

// InitializeHandlers loads configuration and constructs every handler
func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv(constants.StageEnvVar)
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	commonServices = handlers.NewCommonServices(logger.Log)
	exitHandler = handlers.NewExitHandler(commonServices)
	healthHandler = handlers.NewHealthHandler()
}

// InitializeRoutes registers middleware and every route on the router
func InitializeRoutes(router *gin.Engine) {
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.DefaultRateLimiter.Middleware())

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		exits := v1.Group("/exits")
		{
			exits.POST("/decode", exitHandler.DecodeExit)
			exits.POST("/encode", exitHandler.EncodeExit)
			exits.POST("/hash", exitHandler.HashExit)
			exits.POST("/diff", exitHandler.DiffExits)
		}
	}
}
