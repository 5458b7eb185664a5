package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/app/services"
	"github.com/usc-bienestar/backend/internal/middleware"
)

// CareerController exposes the career catalog
type CareerController struct {
	careerService services.CareerService
}

// NewCareerController creates a new CareerController
func NewCareerController(careerService services.CareerService) *CareerController {
	return &CareerController{
		careerService: careerService,
	}
}

// List retrieves all careers
// @Summary Get all careers
// @Description Retrieves the career catalog grouped by faculty
// @Tags careers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Career} "Careers retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /careers [get]
func (c *CareerController) List(ctx *gin.Context) {
	careers, err := c.careerService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      careers,
		Timestamp: time.Now(),
	})
}
