package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"symptom_reporter/internal/config"
	"symptom_reporter/internal/handler"
	"symptom_reporter/internal/middleware"
	"symptom_reporter/internal/model"
	"symptom_reporter/internal/ratelimit"
	"symptom_reporter/internal/repository"
	"symptom_reporter/internal/service"
	"symptom_reporter/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET_KEY")
	if jwtSecret == "" {
		log.Fatalf("JWT_SECRET_KEY not set in environment")
	}
	jwtExpHoursStr := os.Getenv("JWT_EXPIRATION_HOURS")
	jwtExpHours, err := strconv.ParseInt(jwtExpHoursStr, 10, 64)
	if err != nil {
		log.Printf("Invalid JWT_EXPIRATION_HOURS, defaulting to 24: %v", err)
		jwtExpHours = 24
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Fatalf("ADMIN_PASSWORD not set in environment")
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(jwtSecret, jwtExpHours)

	// --- Initialize Repositories ---
	adminRepo := repository.NewAdminRepository(dbPool)
	symptomRepo := repository.NewSymptomRepository(dbPool)
	reportRepo := repository.NewReportRepository(dbPool)

	// --- Seed Catalog and Bootstrap Admin ---
	if err := symptomRepo.Seed(context.Background(), model.SymptomCatalog); err != nil {
		log.Fatalf("Failed to seed symptom catalog: %v", err)
	}
	log.Printf("Symptom catalog seeded (%d known symptoms)", len(model.SymptomCatalog))
	if err := service.BootstrapAdmin(context.Background(), adminRepo, adminUsername, adminPassword, uuid.NewString()); err != nil {
		log.Fatalf("Failed to bootstrap admin: %v", err)
	}

	// --- Initialize Services ---
	authService := service.NewAuthService(adminRepo, jwtUtil, adminUsername)
	reportService := service.NewReportService(reportRepo)
	dashboardService := service.NewDashboardService(reportRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	reportHandler := handler.NewReportHandler(reportService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler()

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}))

	// Simple CORS middleware (allow all for development)
	// For production, configure specific origins, methods, headers
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	reportLimiter := ratelimit.NewKeyedLimiter(3, time.Hour,
		"Too many submissions from this IP. Please try again later.")
	loginLimiter := ratelimit.NewKeyedLimiter(5, 15*time.Minute,
		"Too many login attempts. Please try again later.")
	reportLimitMW := middleware.RateLimitMiddleware(reportLimiter)
	loginLimitMW := middleware.RateLimitMiddleware(loginLimiter)

	// --- Register Routes ---
	router.GET("/", healthHandler.Root)
	apiGroup := router.Group("/api")
	apiGroup.GET("", healthHandler.APIRoot)
	apiGroup.GET("/health", healthHandler.Health)
	reportHandler.RegisterReportRoutes(apiGroup, reportLimitMW)
	authHandler.RegisterAuthRoutes(apiGroup, loginLimitMW)
	dashboardHandler.RegisterDashboardRoutes(apiGroup, jwtAuthMW)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
