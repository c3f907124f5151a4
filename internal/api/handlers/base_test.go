package handlers_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/wiredns/internal/api/handlers"
	"github.com/jroosing/wiredns/internal/config"
)

func setupTestRouter(h *handlers.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api/v1")
	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.GET("/config", h.GetConfig)
	api.POST("/decode", h.Decode)
	api.POST("/encode", h.Encode)
	api.POST("/compare", h.Compare)
	api.GET("/captures", h.Captures)

	return r
}

func newTestHandler(t *testing.T) *handlers.Handler {
	t.Helper()
	cfg := &config.Config{}
	return handlers.New(cfg, nil, nil)
}
