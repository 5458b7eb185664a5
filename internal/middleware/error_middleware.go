package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
	"github.com/usc-bienestar/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Controllers call
// it instead of translating sentinel errors themselves.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrSessionNotFound),
		errors.Is(err, apperrors.ErrCareerNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, messageFor(err, "Recurso no encontrado")))

	case errors.Is(err, apperrors.ErrUserAlreadyExists),
		errors.Is(err, apperrors.ErrCareerAlreadyExists),
		errors.Is(err, apperrors.ErrAlreadyEnrolled),
		errors.Is(err, apperrors.ErrConflict):
		// Duplicates surface as 400 on this API, not 409
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, messageFor(err, "El recurso ya existe")))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, 401, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Credenciales invalidas"))

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, 401, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expirado"))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, 401, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token invalido"))

	case errors.Is(err, apperrors.ErrUnknownSubject):
		respond(c, 401, dto.NewErrorDetail(dto.ErrorCodeUnknownSubject, "Usuario del token no registrado"))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, 403, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permiso denegado"))

	case errors.Is(err, apperrors.ErrCourseInactive):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeResourceInactive, "El curso no esta activo"))

	case errors.Is(err, apperrors.ErrSessionInactive):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeResourceInactive, "El horario no esta activo"))

	case errors.Is(err, apperrors.ErrNoCapacity):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeCapacityExceeded, "No hay cupos disponibles"))

	case errors.Is(err, apperrors.ErrNotEnrolled):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "El usuario no esta inscrito"))

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, messageFor(err, "Datos invalidos")))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(c, 500, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Error interno del servidor"))
	}
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}

// messageFor surfaces specific sentinel messages while keeping a generic
// fallback for the grouped cases.
func messageFor(err error, fallback string) string {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return "Usuario no encontrado"
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return "Curso no encontrado"
	case errors.Is(err, apperrors.ErrSessionNotFound):
		return "Horario no encontrado"
	case errors.Is(err, apperrors.ErrCareerNotFound):
		return "Carrera no encontrada"
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		return "El usuario ya existe"
	case errors.Is(err, apperrors.ErrCareerAlreadyExists):
		return "La carrera ya existe"
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		return "El usuario ya esta inscrito"
	default:
		return fallback
	}
}
