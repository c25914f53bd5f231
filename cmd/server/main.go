package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"greenchain/internal/config"
	"greenchain/internal/directory"
	"greenchain/internal/handler"
	"greenchain/internal/logger"
	"greenchain/internal/middleware"
	"greenchain/internal/service"
	"greenchain/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	// --- User directory ---
	var dir directory.Directory
	var healthCheck func(ctx context.Context) error

	switch cfg.DirectoryDriver {
	case config.DriverPostgres:
		dbCfg, err := config.LoadDBConfig()
		if err != nil {
			logger.Fatal("failed to load DB config", "error", err)
		}
		dbPool, err := config.ConnectDB(dbCfg)
		if err != nil {
			logger.Fatal("failed to connect to database", "error", err)
		}
		defer dbPool.Close()
		if err := directory.Migrate(context.Background(), dbPool); err != nil {
			logger.Fatal("failed to migrate database", "error", err)
		}
		dir = directory.NewPostgres(dbPool)
		healthCheck = dbPool.Ping
	default:
		memDir, err := directory.NewMemory()
		if err != nil {
			logger.Fatal("failed to seed demo directory", "error", err)
		}
		dir = memDir
	}

	// --- Services and handlers ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)
	authService := service.NewAuthService(dir, jwtUtil)
	authHandler := handler.NewAuthHandler(authService, dir)
	dashboardHandler := handler.NewDashboardHandler()

	// --- Setup Gin Router ---
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())

	// Simple CORS middleware (allow all for development)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	adminRoleMW := middleware.AdminMiddleware()

	apiGroup := router.Group("/api/v1")
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW)
	dashboardHandler.RegisterDashboardRoutes(apiGroup, jwtAuthMW, adminRoleMW)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		if healthCheck != nil {
			if err := healthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "directory": "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "directory": cfg.DirectoryDriver})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "port", cfg.ServerPort, "directory_driver", cfg.DirectoryDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exiting")
}
