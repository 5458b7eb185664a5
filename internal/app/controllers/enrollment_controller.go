package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/app/services"
	"github.com/usc-bienestar/backend/internal/middleware"
)

// EnrollmentController handles the enrollment toggle
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Toggle enrolls or cancels the user in a session
// @Summary Toggle an enrollment
// @Description Enrolls the user when no enrollment exists for the session, cancels it otherwise
// @Tags enrollments
// @Produce json
// @Param id path int true "Session ID" Format(int64) minimum(1)
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Param identifier query int true "User identifier" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Enrollment toggled"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters, inactive course or session, or no capacity"
// @Failure 404 {object} dto.ErrorResponse "User, course or session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{id}/courses/{courseId}/enrollment [post]
func (c *EnrollmentController) Toggle(ctx *gin.Context) {
	sessionID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	identifier, err := strconv.ParseInt(ctx.Query("identifier"), 10, 64)
	if err != nil || identifier <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Identificador invalido")
		errorDetail = errorDetail.WithDetails("El parametro identifier debe ser un numero positivo")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	action, err := c.enrollmentService.Toggle(ctx, sessionID, courseID, identifier)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Inscripcion realizada correctamente"
	if action == services.ActionCancelled {
		message = "Inscripcion cancelada correctamente"
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.MessageResponse{Message: message},
		Timestamp: time.Now(),
	})
}
