package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agrisetu/internal/config"
	"agrisetu/internal/handler"
	"agrisetu/internal/middleware"
	"agrisetu/internal/ratelimit"
	"agrisetu/internal/repository"
	"agrisetu/internal/service"
	"agrisetu/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg := config.LoadDBConfig()
	appCfg := config.LoadAppConfig()

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

	// --- Rate Limiting ---
	// Left as a nil interface when Redis is not configured so the middleware passes through
	var authLimiter middleware.RateLimiter
	if appCfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := ratelimit.NewClient(ctx, appCfg.RedisURL)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		authLimiter = ratelimit.NewRedisLimiter(redisClient, appCfg.AuthRateLimit, time.Minute)
		log.Printf("INFO: auth rate limit %d requests/minute per client", appCfg.AuthRateLimit)
	} else {
		log.Println("INFO: REDIS_URL not set, auth rate limiting disabled")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(appCfg.JWTSecret, appCfg.JWTExpirationHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	productRepo := repository.NewProductRepository(dbPool)
	cartRepo := repository.NewCartRepository(dbPool)
	promotionRepo := repository.NewPromotionRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	productService := service.NewProductService(productRepo, userRepo)
	directoryService := service.NewDirectoryService(userRepo)
	promotionService := service.NewPromotionService(promotionRepo)
	cartService := service.NewCartService(cartRepo, productRepo, promotionService)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	promotionHandler := handler.NewPromotionHandler(promotionService)
	directoryHandler := handler.NewDirectoryHandler(directoryService, productService)

	// --- Setup Gin Router ---
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	customerMW := middleware.CustomerMiddleware()
	farmerMW := middleware.FarmerMiddleware()
	authLimitMW := middleware.RateLimitMiddleware(authLimiter, "auth")

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup, authLimitMW)
	productHandler.RegisterProductRoutes(apiGroup, jwtAuthMW, farmerMW)
	cartHandler.RegisterCartRoutes(apiGroup, jwtAuthMW, customerMW)
	promotionHandler.RegisterPromotionRoutes(apiGroup, jwtAuthMW, customerMW)
	directoryHandler.RegisterDirectoryRoutes(apiGroup)

	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + appCfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", appCfg.Port)
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
