package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/wiredns/internal/api/handlers"
	"github.com/jroosing/wiredns/internal/api/middleware"
	"github.com/jroosing/wiredns/internal/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/wiredns/internal/api/docs" // swagger docs
)

// RegisterRoutes wires the wire-codec debug API onto r.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// Optional API key protection.
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.GET("/config", h.GetConfig)

	api.POST("/decode", h.Decode)
	api.POST("/encode", h.Encode)
	api.POST("/compare", h.Compare)
	api.GET("/captures", h.Captures)
}
