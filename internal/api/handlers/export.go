package handlers

import (
	"fmt"
	"net/http"
	"time"

	"resource-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles HTTP requests for spreadsheet exports
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportMembers downloads the member list as a spreadsheet
// @Summary Export team members
// @Description Download the full member list, raw fields plus derived ones, as an xlsx workbook
// @Tags export
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Member workbook"
// @Failure 404 {object} map[string]interface{} "No members to export"
// @Router /export/members [get]
func (h *ExportHandler) ExportMembers(c *gin.Context) {
	buf, filename, err := h.exportService.MembersWorkbook(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
