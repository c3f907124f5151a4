package handlers

import (
	"encoding/base64"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/wiredns/internal/api/models"
	"github.com/jroosing/wiredns/internal/store"
)

// Encode godoc
// @Summary Render a structured DNS message to wire format
// @Description Builds a DNS message from its JSON fields and renders it to bytes, optionally applying name compression
// @Tags wire
// @Accept json
// @Produce json
// @Param request body models.EncodeRequest true "message fields"
// @Success 200 {object} models.EncodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /encode [post]
func (h *Handler) Encode(c *gin.Context) {
	var req models.EncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logError("encode: bad request", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	msg, err := fromMessageRequest(req.Message)
	if err != nil {
		h.logError("encode: bad message", err)
		h.recordCapture(store.OperationEncode, "", "", false)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	h.encodeTotal.Add(1)
	r := h.leaseRenderer()
	defer h.releaseRenderer(r)
	msg.EncodeTo(r, req.Compress)
	raw := r.Bytes()

	resp := models.EncodeResponse{
		Hex:    hex.EncodeToString(raw),
		Base64: base64.StdEncoding.EncodeToString(raw),
	}
	h.recordCapture(store.OperationEncode, summarizeRequest(req.Message), resp.Hex, true)
	c.JSON(http.StatusOK, resp)
}

func summarizeRequest(req models.MessageRequest) string {
	return "id=" + itoa(req.ID) + " questions=" + itoa(len(req.Questions)) +
		" answers=" + itoa(len(req.Answer))
}
