package handlers

import (
	"errors"
	"net/http"
	"strings"

	apperrors "resource-planner-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto an HTTP status
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err) || errors.Is(err, apperrors.ErrNoDataToExport):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case isBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isBadRequest(err error) bool {
	if apperrors.IsValidation(err) {
		return true
	}
	for _, sentinel := range []error{
		apperrors.ErrInvalidForecastRange,
		apperrors.ErrInvalidGranularity,
		apperrors.ErrInvalidDateFormat,
		apperrors.ErrNoResponsiblePersons,
		apperrors.ErrUnknownMembershipSignal,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return strings.Contains(err.Error(), "validation failed")
}
