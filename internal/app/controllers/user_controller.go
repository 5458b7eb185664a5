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

// UserController handles role-profile operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// ToggleRole grants or revokes the administrative profile of a user
// @Summary Toggle the administrative role
// @Description Grants the administrative profile when the user has none, revokes it otherwise
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param identifier path int true "User identifier" Format(int64) minimum(1)
// @Param request body dto.ToggleRoleRequest true "Role and area, used on grant"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Role toggled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{identifier}/role [post]
func (c *UserController) ToggleRole(ctx *gin.Context) {
	identifier, ok := parseIdentifierParam(ctx)
	if !ok {
		return
	}

	var req dto.ToggleRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Datos de rol invalidos")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	action, err := c.userService.ToggleAdminRole(ctx, identifier, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Rol administrativo asignado correctamente"
	if action == services.RoleRevoked {
		message = "Rol administrativo revocado correctamente"
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.MessageResponse{Message: message},
		Timestamp: time.Now(),
	})
}

// RegisterStudent attaches the student profile to a user
// @Summary Register a student profile
// @Description Links a user to a career and semester so login resolves them as a student
// @Tags users
// @Accept json
// @Produce json
// @Param identifier path int true "User identifier" Format(int64) minimum(1)
// @Param request body dto.RegisterStudentRequest true "Career and semester"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse} "Student profile created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate profile"
// @Failure 404 {object} dto.ErrorResponse "User or career not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{identifier}/student [post]
func (c *UserController) RegisterStudent(ctx *gin.Context) {
	identifier, ok := parseIdentifierParam(ctx)
	if !ok {
		return
	}

	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Datos de estudiante invalidos")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.userService.RegisterStudentProfile(ctx, identifier, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.MessageResponse{
			Message: "Perfil de estudiante registrado correctamente",
			ID:      id,
		},
		Timestamp: time.Now(),
	})
}

// parseIdentifierParam reads the identifier path parameter
func parseIdentifierParam(ctx *gin.Context) (int64, bool) {
	identifier, err := strconv.ParseInt(ctx.Param("identifier"), 10, 64)
	if err != nil || identifier <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Identificador invalido")
		errorDetail = errorDetail.WithDetails("El identificador debe ser un numero positivo")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return identifier, true
}
