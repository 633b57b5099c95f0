package handlers

import (
	"net/http"
	"time"

	apperrors "resource-planner-backend/internal/errors"
	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ForecastHandler handles HTTP requests for team size projections
type ForecastHandler struct {
	forecastService *service.ForecastService
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(forecastService *service.ForecastService) *ForecastHandler {
	return &ForecastHandler{
		forecastService: forecastService,
	}
}

// parseForecastParams reads the shared start/end/granularity query parameters
func parseForecastParams(c *gin.Context) (time.Time, time.Time, models.Granularity, error) {
	start, err := service.ParseDate(c.Query("start"))
	if err != nil {
		return time.Time{}, time.Time{}, "", apperrors.ErrInvalidDateFormat
	}
	end, err := service.ParseDate(c.Query("end"))
	if err != nil {
		return time.Time{}, time.Time{}, "", apperrors.ErrInvalidDateFormat
	}
	granularity, err := service.ParseGranularity(c.DefaultQuery("granularity", string(models.GranularityMonthly)))
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	return start, end, granularity, nil
}

// GetForecast projects team size over a date range
// @Summary Team size forecast
// @Description Bucket the member set into calendar periods, counting active members at each period start and planned exits inside each period, plus a per-year entries/exits summary
// @Tags forecast
// @Accept json
// @Produce json
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Param granularity query string false "Bucket size: monthly, quarterly or yearly" default(monthly)
// @Success 200 {object} service.Forecast "Successfully computed forecast"
// @Failure 400 {object} map[string]interface{} "Invalid range or granularity"
// @Router /forecast [get]
func (h *ForecastHandler) GetForecast(c *gin.Context) {
	start, end, granularity, err := parseForecastParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	forecast, err := h.forecastService.Project(start, end, granularity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, forecast)
}
