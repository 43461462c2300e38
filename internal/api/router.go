package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/finwise-ai/finchat/internal/api/admin"
	"github.com/finwise-ai/finchat/internal/api/chat"
	"github.com/finwise-ai/finchat/internal/api/middleware"
	"github.com/finwise-ai/finchat/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	APIKey       string
	AllowOrigins []string
	Release      bool
}

// SetupRouter sets up the Gin router
func SetupRouter(
	chatService *service.ChatService,
	feedbackService *service.FeedbackService,
	companyService *service.CompanyService,
	logger *zap.Logger,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Static chat UI
	SetupStaticRoutes(r)

	// Chat API (public)
	chatHandler := chat.NewHandler(chatService, feedbackService, cfg.Release, logger)
	apiGroup := r.Group("/api")
	chatHandler.RegisterRoutes(apiGroup)

	// Admin API (requires API key)
	adminHandler := admin.NewHandler(companyService)
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.Auth(cfg.APIKey))
	adminHandler.RegisterRoutes(adminGroup)

	return r
}
