package main

import (
	"context"

	"osrstrivia/config"
	"osrstrivia/handlers"
	"osrstrivia/middleware"
	"osrstrivia/models"
	"osrstrivia/routes"
	"osrstrivia/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.CompletedQuestion{},
		&models.Question{},
	)
	if err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	// Initialize Redis; leaderboards fall back to postgres without it
	redisClient, err := config.InitRedis(context.Background(), cfg)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, leaderboard will be served from postgres")
		redisClient = nil
	}

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	questionService := services.NewQuestionService(db)
	leaderboardService := services.NewLeaderboardService(db, redisClient)
	answerService := services.NewAnswerService(db, leaderboardService)

	// Seed the question bank on first boot
	if err := questionService.Seed(cfg.QuestionsFile); err != nil {
		log.WithError(err).Fatal("failed to seed questions")
	}

	// Initialize WebSocket hub for live leaderboard updates
	hub := services.NewHub()
	leaderboardService.AttachHub(hub)
	go hub.Run()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	answerHandler := handlers.NewAnswerHandler(answerService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, questionHandler, answerHandler, leaderboardHandler, hub, cfg.JWTSecret)

	// Start server
	log.WithField("port", cfg.Port).Info("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
