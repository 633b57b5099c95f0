package handlers

import (
	"net/http"
	"time"

	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StaffingHandler handles HTTP requests for the staffing evaluator
type StaffingHandler struct {
	staffingService *service.StaffingService
}

// NewStaffingHandler creates a new staffing handler
func NewStaffingHandler(staffingService *service.StaffingService) *StaffingHandler {
	return &StaffingHandler{
		staffingService: staffingService,
	}
}

// GetStaffingReport runs a full evaluation pass
// @Summary Staffing and knowledge-transfer report
// @Description Evaluate every component's staffing status and flag responsible persons departing inside their component's knowledge-transfer window. Components are ordered worst-first.
// @Tags staffing
// @Accept json
// @Produce json
// @Param date query string false "Evaluation date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.StaffingReport "Successfully computed report"
// @Failure 400 {object} map[string]interface{} "Invalid evaluation date"
// @Router /staffing/report [get]
func (h *StaffingHandler) GetStaffingReport(c *gin.Context) {
	today := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := service.ParseDate(raw)
		if err != nil {
			respondError(c, apperrors.ErrInvalidDateFormat)
			return
		}
		today = parsed
	}

	report, err := h.staffingService.Report(today)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
