// Package handlers implements the REST API endpoint handlers for wiredns.
//
// @title wiredns debug API
// @version 1.0
// @description REST API for decoding, encoding, and comparing DNS wire messages.
//
// @contact.name wiredns maintainers
// @contact.url https://github.com/jroosing/wiredns
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package handlers

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jroosing/wiredns/internal/config"
	"github.com/jroosing/wiredns/internal/pool"
	"github.com/jroosing/wiredns/internal/store"
	"github.com/jroosing/wiredns/internal/wire"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	logger    *slog.Logger
	startTime time.Time
	store     *store.Store

	renderers *pool.Pool[*wire.MessageRender]

	decodeTotal  atomic.Uint64
	encodeTotal  atomic.Uint64
	compareTotal atomic.Uint64
	errorsTotal  atomic.Uint64
}

// New creates a new Handler with the given configuration, logger, and
// capture store.
func New(cfg *config.Config, logger *slog.Logger, st *store.Store) *Handler {
	return &Handler{
		cfg:       cfg,
		logger:    logger,
		startTime: time.Now(),
		store:     st,
		renderers: pool.New(func() *wire.MessageRender { return wire.NewMessageRender(512) }),
	}
}

// leaseRenderer borrows a pooled, reset MessageRender.
func (h *Handler) leaseRenderer() *wire.MessageRender {
	r := h.renderers.Get()
	r.Reset()
	return r
}

func (h *Handler) releaseRenderer(r *wire.MessageRender) {
	h.renderers.Put(r)
}

func (h *Handler) logError(msg string, err error) {
	h.errorsTotal.Add(1)
	if h.logger != nil {
		h.logger.Error(msg, "error", err)
	}
}
