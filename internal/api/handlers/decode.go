package handlers

import (
	"encoding/base64"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/wiredns/internal/api/models"
	"github.com/jroosing/wiredns/internal/store"
	"github.com/jroosing/wiredns/internal/wire"
)

// Decode godoc
// @Summary Decode a wire-format DNS message
// @Description Parses a hex- or base64-encoded DNS message and returns its structured form
// @Tags wire
// @Accept json
// @Produce json
// @Param request body models.DecodeRequest true "message bytes"
// @Success 200 {object} models.DecodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /decode [post]
func (h *Handler) Decode(c *gin.Context) {
	var req models.DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logError("decode: bad request", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	raw, err := decodeRequestBytes(req)
	if err != nil {
		h.logError("decode: bad payload", err)
		h.recordCapture(store.OperationDecode, req.Hex, "", false)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	h.decodeTotal.Add(1)
	msg, err := wire.DecodeMessage(raw)
	if err != nil {
		h.logError("decode: malformed message", err)
		h.recordCapture(store.OperationDecode, hex.EncodeToString(raw), "", false)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	view := toMessageView(msg)
	h.recordCapture(store.OperationDecode, hex.EncodeToString(raw), summarizeMessage(view), true)
	c.JSON(http.StatusOK, models.DecodeResponse{Message: view})
}

func decodeRequestBytes(req models.DecodeRequest) ([]byte, error) {
	switch {
	case req.Hex != "":
		return hex.DecodeString(req.Hex)
	case req.Base64 != "":
		return base64.StdEncoding.DecodeString(req.Base64)
	default:
		return nil, errEmptyPayload
	}
}

func summarizeMessage(v models.MessageView) string {
	return "id=" + itoa(v.Header.ID) + " qd=" + itoa(v.Header.QDCount) +
		" an=" + itoa(v.Header.ANCount) + " ns=" + itoa(v.Header.NSCount) + " ar=" + itoa(v.Header.ARCount)
}

func (h *Handler) recordCapture(op store.Operation, requestSummary, resultSummary string, ok bool) {
	if h.store == nil {
		return
	}
	if _, err := h.store.Insert(op, requestSummary, resultSummary, ok); err != nil {
		h.logError("capture: insert failed", err)
	}
}
