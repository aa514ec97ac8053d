package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/architect/learnpath/internal/common/database"
	commonHandlers "github.com/architect/learnpath/internal/common/handlers"
	"github.com/architect/learnpath/internal/common/health"
	"github.com/architect/learnpath/internal/common/middleware"
	"github.com/architect/learnpath/internal/learnpath/handlers"
	"github.com/architect/learnpath/internal/learnpath/services"
	"github.com/architect/learnpath/pkg/config"
	"github.com/architect/learnpath/pkg/logger"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database (SQLite for development, PostgreSQL for production)
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Services
	engine := services.NewRecommendationEngine(db, cfg.Recommendation, logger.L())
	assessmentSvc := services.NewAssessmentService(db, engine, logger.L())
	roadmapSvc := services.NewRoadmapService(db, engine, logger.L())

	// Create Gin engine
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.ErrorHandler())

	// Health check endpoints
	healthChecker := health.NewHealthChecker(db, version)
	healthHandler := commonHandlers.NewHealthHandler(healthChecker)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/readiness", healthHandler.Readiness)
	router.GET("/health/liveness", healthHandler.Liveness)
	router.GET("/health/metrics", healthHandler.Metrics)
	router.GET("/health/detailed", healthHandler.Detailed)

	// Handlers
	assessmentHandler := handlers.NewAssessmentHandler(assessmentSvc)
	recommendationHandler := handlers.NewRecommendationHandler(engine)
	roadmapHandler := handlers.NewRoadmapHandler(roadmapSvc)

	v1 := router.Group("/api/v1")
	{
		assessmentGroup := v1.Group("/assessment")
		{
			assessmentGroup.GET("/diagnostic", assessmentHandler.GetDiagnostic)
			assessmentGroup.GET("/topic/:topic_id", assessmentHandler.GetTopicQuestions)
			assessmentGroup.POST("/submit", middleware.AuthRequired(), assessmentHandler.SubmitAssessment)
			assessmentGroup.GET("/history", middleware.AuthRequired(), assessmentHandler.GetHistory)
			assessmentGroup.GET("/history/:attempt_id", middleware.AuthRequired(), assessmentHandler.GetAttemptDetail)
		}

		recommendationGroup := v1.Group("/recommendations")
		{
			recommendationGroup.GET("", middleware.AuthRequired(), recommendationHandler.GetRecommendations)
			recommendationGroup.POST("/generate", middleware.AuthRequired(), recommendationHandler.Generate)
			recommendationGroup.POST("/:id/complete", middleware.AuthRequired(), recommendationHandler.Complete)
		}

		v1.GET("/topics", middleware.OptionalAuth(), roadmapHandler.ListTopics)

		subtopicGroup := v1.Group("/subtopics")
		{
			subtopicGroup.GET("/user/progress", middleware.AuthRequired(), roadmapHandler.GetUserProgress)
			subtopicGroup.GET("/:topic_id", middleware.OptionalAuth(), roadmapHandler.ListSubtopics)
			subtopicGroup.POST("/:subtopic_id/complete", middleware.AuthRequired(), roadmapHandler.ToggleSubtopic)
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting learnpath server", zap.String("address", address))

	if err := router.Run(address); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
