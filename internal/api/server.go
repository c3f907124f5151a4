// Package api provides the REST debug API for wiredns. It exposes endpoints
// for decoding, encoding, and comparing DNS wire messages, plus health,
// stats, and capture-history endpoints, via a Gin-based HTTP server.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/wiredns/internal/api/handlers"
	"github.com/jroosing/wiredns/internal/api/middleware"
	"github.com/jroosing/wiredns/internal/config"
	"github.com/jroosing/wiredns/internal/store"
)

// Server is the wire-codec debug API server.
//
// Security note: do not expose the API to untrusted networks without
// authentication (cfg.API.APIKey).
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// New builds a Server. st may be nil, in which case capture history is
// disabled: decode/encode/compare still work but are not persisted.
func New(cfg *config.Config, logger *slog.Logger, st *store.Store) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.SlogRequestLogger(logger))

	h := handlers.New(cfg, logger, st)
	RegisterRoutes(engine, h, cfg)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
