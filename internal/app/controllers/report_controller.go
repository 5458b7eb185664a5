package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/usc-bienestar/backend/internal/app/models"
	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/app/services"
	"github.com/usc-bienestar/backend/internal/middleware"
)

// ReportController exposes the enrollment report
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// Get retrieves the nested enrollment report
// @Summary Get the enrollment report
// @Description Retrieves every course with its sessions and enrolled users, optionally filtered by category
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param identifier path int true "Requesting user identifier"
// @Param category query string false "Course category filter"
// @Success 200 {object} dto.APIResponse{data=[]dto.ReportCourse} "Report retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown category"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/{identifier} [get]
func (c *ReportController) Get(ctx *gin.Context) {
	identifier, ok := parseIdentifierParam(ctx)
	if !ok {
		return
	}

	report, err := c.reportService.Build(ctx, identifier, categoryQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// Export downloads the enrollment report as an xlsx workbook
// @Summary Export the enrollment report
// @Description Downloads the enrollment report as an xlsx workbook, one sheet per course
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param identifier path int true "Requesting user identifier"
// @Param category query string false "Course category filter"
// @Success 200 {file} binary "xlsx workbook"
// @Failure 400 {object} dto.ErrorResponse "Unknown category"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/{identifier}/export [get]
func (c *ReportController) Export(ctx *gin.Context) {
	identifier, ok := parseIdentifierParam(ctx)
	if !ok {
		return
	}

	content, err := c.reportService.Export(ctx, identifier, categoryQuery(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := fmt.Sprintf("reporte_inscripciones_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// categoryQuery reads the optional category filter
func categoryQuery(ctx *gin.Context) *models.CourseCategory {
	if raw := ctx.Query("category"); raw != "" {
		cat := models.CourseCategory(raw)
		return &cat
	}
	return nil
}
