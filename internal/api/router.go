package api

import (
	"net/http"
	"time"

	"github.com/content-archive-api/internal/auth"
	"github.com/content-archive-api/internal/config"
	"github.com/content-archive-api/internal/database"
	"github.com/content-archive-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, db *database.DB, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())
	router.Use(auth.SessionMiddleware(cfg.Server.SessionSecret))

	// Handlers
	articleHandler := NewArticleHandler(services, cfg, log)
	profileHandler := NewProfileHandler(services, log)
	proxyHandler := NewProxyImageHandler(cfg, log)

	// Health check
	router.GET("/health", healthCheck(db))

	// API v1
	v1 := router.Group("/v1")
	{
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/:slug", articleHandler.GetArticle)
			articles.POST("/import", articleHandler.ImportArticle)
			articles.PUT("/:id", auth.RequireIdentity(), articleHandler.UpdateArticle)
			articles.DELETE("/:id", auth.RequireIdentity(), articleHandler.DeleteArticle)
			articles.POST("/bulk-delete", auth.RequireIdentity(), articleHandler.BulkDeleteArticles)
		}

		profile := v1.Group("/profile")
		{
			profile.POST("/refresh-avatar", auth.RequireIdentity(), profileHandler.RefreshAvatar)
			profile.GET("/refresh-avatar", profileHandler.RefreshAvatarByID)
		}

		v1.GET("/search", articleHandler.SearchArticles)
		v1.GET("/proxy-image", proxyHandler.ProxyImage)
	}

	return router
}

// healthCheck reports service and database health
func healthCheck(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if db != nil {
			if err := db.HealthCheck(c.Request.Context()); err != nil {
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "content-archive-api",
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware tags every request with an id for log correlation
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString("request_id")).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
