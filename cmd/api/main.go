package main

import (
	"fmt"
	"net/http"
	"os"

	"finsight/internal/config"
	"finsight/internal/database"
	"finsight/internal/handlers"
	"finsight/internal/logger"
	"finsight/internal/middleware"
	"finsight/internal/services"
	"finsight/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "finsight/internal/docs" // Import swagger docs
)

// @title           Finsight API
// @version         1.0
// @description     Finsight is a personal finance dashboard backend: transaction ingestion, filtering and aggregation, wallet management, and analytics.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	transactionService := services.NewTransactionService(db)
	walletService := services.NewWalletService(db)
	messageService := services.NewMessageService(db)
	settingsService := services.NewSettingsService(db)
	dashboardService := services.NewDashboardService(transactionService)
	exportService := services.NewExportService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	walletHandler := handlers.NewWalletHandler(walletService)
	messageHandler := handlers.NewMessageHandler(messageService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Profile pictures
	router.Static("/uploads", appConfig.UploadsDir)

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// User routes
	users := protected.Group("/users")
	users.PUT("/me", userHandler.UpdateUser)
	users.POST("/me/profile-pic", userHandler.UploadProfilePic)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("/upload", transactionHandler.UploadTransactions)

	// Dashboard routes
	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)
	dashboard.GET("/chart-data", dashboardHandler.GetChartData)

	// Analytics
	protected.GET("/analytics", dashboardHandler.GetAnalytics)

	// Wallet routes
	wallet := protected.Group("/wallet")
	wallet.GET("/balance", walletHandler.GetBalance)
	wallet.POST("/add", walletHandler.Add)
	wallet.POST("/withdraw", walletHandler.Withdraw)
	wallet.GET("/history", walletHandler.GetHistory)

	// Message routes
	messages := protected.Group("/messages")
	messages.GET("", messageHandler.ListMessages)
	messages.POST("/support", messageHandler.SubmitSupport)
	messages.PUT("/:id/read", messageHandler.MarkRead)
	messages.POST("/broadcast", middleware.RequireAdmin(), messageHandler.Broadcast)

	// Settings routes
	settings := protected.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.PUT("", settingsHandler.UpdateSettings)
	settings.DELETE("", settingsHandler.DeleteSettings)

	// Export
	protected.POST("/export/csv", exportHandler.ExportCSV)

	log.Infof("Starting Finsight backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
