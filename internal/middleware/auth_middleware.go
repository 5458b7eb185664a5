package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/app/repositories"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
	"github.com/usc-bienestar/backend/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID     = "userID"
	ContextIdentifier = "identifier"
	ContextRole       = "role"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   *repositories.UserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo *repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// JWTAuth validates the bearer token and resolves its subject against the
// users table. A valid signature whose identifier no longer exists is
// rejected, so deleted users cannot keep using old tokens.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Autenticacion requerida")
			errorDetail = errorDetail.WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Autenticacion requerida")
			errorDetail = errorDetail.WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				HandleAPIError(c, apperrors.ErrTokenExpired)
			} else {
				HandleAPIError(c, apperrors.ErrTokenInvalid)
			}
			c.Abort()
			return
		}

		user, err := m.userRepo.GetByIdentifier(c.Request.Context(), claims.Identifier)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				HandleAPIError(c, apperrors.ErrUnknownSubject)
			} else {
				HandleAPIError(c, err)
			}
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextIdentifier, user.Identifier)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// AdministrativeRequired allows only users holding a persisted
// administrative profile. Runs after JWTAuth.
func (m *AuthMiddleware) AdministrativeRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Autenticacion requerida")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		// Check the profile in the database, not the token claim, so a
		// revoked role takes effect before the token expires
		_, err := m.userRepo.GetAdministrative(c.Request.Context(), userID.(int64))
		if err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) {
				HandleAPIError(c, apperrors.ErrPermissionDenied)
			} else {
				HandleAPIError(c, err)
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
