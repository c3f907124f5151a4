package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/wiredns/internal/api/models"
)

// Captures godoc
// @Summary List recent captures
// @Description Returns the most recent decode/encode/compare invocations, newest first
// @Tags captures
// @Produce json
// @Param limit query int false "max results (default 50, max 500)"
// @Param offset query int false "pagination offset"
// @Success 200 {object} models.CapturesResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /captures [get]
func (h *Handler) Captures(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	if h.store == nil {
		c.JSON(http.StatusOK, models.CapturesResponse{Captures: []models.CaptureView{}, Limit: limit, Offset: offset})
		return
	}

	captures, err := h.store.List(limit, offset)
	if err != nil {
		h.logError("captures: list failed", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	views := make([]models.CaptureView, 0, len(captures))
	for _, item := range captures {
		views = append(views, models.CaptureView{
			ID:             item.ID,
			Operation:      string(item.Operation),
			RequestSummary: item.RequestSummary,
			ResultSummary:  item.ResultSummary,
			OK:             item.OK,
			CreatedAt:      item.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	c.JSON(http.StatusOK, models.CapturesResponse{Captures: views, Limit: limit, Offset: offset})
}
