package handlers

import (
	"net/http"
	"time"

	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the overview page
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetMetrics returns the headline counters
// @Summary Dashboard metrics
// @Description Get the headline counters: total members, critical departures, completed transfers and the tenure/exit averages
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} service.DashboardMetrics "Successfully computed metrics"
// @Router /dashboard/metrics [get]
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.dashboardService.Metrics(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetCriticalExits lists members departing inside the critical window
// @Summary Critical departures
// @Description List members whose planned exit falls inside the critical window, soonest first, each labeled with an urgency level
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully listed critical departures"
// @Router /dashboard/critical [get]
func (h *DashboardHandler) GetCriticalExits(c *gin.Context) {
	exits, err := h.dashboardService.CriticalExits(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"critical_exits": exits,
		"total":          len(exits),
	})
}

// GetBirthdays lists members with a birthday this month
// @Summary Birthdays this month
// @Description List members whose birthday falls in the current month, ordered by day
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully listed birthdays"
// @Router /dashboard/birthdays [get]
func (h *DashboardHandler) GetBirthdays(c *gin.Context) {
	birthdays, err := h.dashboardService.Birthdays(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"birthdays": birthdays,
		"total":     len(birthdays),
	})
}
