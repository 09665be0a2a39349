package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get dashboard statistics
// @Description Get aggregated counters for the coordination dashboard
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/stats [get]
func (h *Handler) getDashboardStats(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboardStats")

	stats, err := h.coordinationService.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
