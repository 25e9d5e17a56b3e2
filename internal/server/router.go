package server

import (
	"net/http"

	"github.com/fekuna/inventory-assistant-service/config"
	"github.com/fekuna/inventory-assistant-service/internal/assistant/handler"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the HTTP surface: a service banner, a health probe
// and the authenticated chat endpoint.
func SetupRoutes(cfg *config.ServerConfig, assistantHandler *handler.AssistantHandler) *gin.Engine {
	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(CORS(cfg.CORSOrigins))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Inventory AI Assistant API",
			"status":  "active",
			"version": "1.0.0",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	r.POST("/chat", Auth(), assistantHandler.Chat)

	return r
}
