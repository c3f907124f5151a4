package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/wiredns/internal/api/models"
	"github.com/jroosing/wiredns/internal/store"
	"github.com/jroosing/wiredns/internal/wire"
)

// Compare godoc
// @Summary Compare two domain names
// @Description Classifies the hierarchical relationship between two presentation-format names
// @Tags wire
// @Accept json
// @Produce json
// @Param request body models.CompareRequest true "names to compare"
// @Success 200 {object} models.CompareResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /compare [post]
func (h *Handler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logError("compare: bad request", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	a, err := wire.NewName(req.A)
	if err != nil {
		h.logError("compare: bad name a", err)
		h.recordCapture(store.OperationCompare, req.A+" vs "+req.B, "", false)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}
	b, err := wire.NewName(req.B)
	if err != nil {
		h.logError("compare: bad name b", err)
		h.recordCapture(store.OperationCompare, req.A+" vs "+req.B, "", false)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	h.compareTotal.Add(1)
	result := a.GetRelation(b)
	resp := models.CompareResponse{
		Order:            result.Order,
		CommonLabelCount: result.CommonLabelCount,
		Relation:         result.Relation.String(),
		IsSubdomain:      result.Relation == wire.RelationSubDomain,
	}
	h.recordCapture(store.OperationCompare, req.A+" vs "+req.B, resp.Relation, true)
	c.JSON(http.StatusOK, resp)
}
