package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/app/services"
	"github.com/usc-bienestar/backend/internal/middleware"
)

// AuthController handles registration and login
type AuthController struct {
	authService  services.AuthService
	secureCookie bool
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, secureCookie bool) *AuthController {
	return &AuthController{
		authService:  authService,
		secureCookie: secureCookie,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a user account with a unique identifier and email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "User information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterUserResponse} "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate user"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Datos de registro invalidos")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.RegisterUserResponse{
			Message: "Usuario registrado correctamente",
			UserID:  id,
		},
		Timestamp: time.Now(),
	})
}

// Login handles credential verification and token issuance
// @Summary Log in
// @Description Verifies credentials and returns the role-resolved profile with an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Datos de acceso invalidos")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// The token also travels as a cookie for browser clients
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie("access_token", resp.Token, resp.ExpiresIn, "/", "", c.secureCookie, true)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}
