package handlers

import (
	"net/http"

	"appraisal_booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetMetrics never fails; a degraded flag marks empty metrics after both reads failed.
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Metrics(c.Request.Context()))
}
