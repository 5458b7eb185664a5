package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/usc-bienestar/backend/internal/app/models"
	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
	"github.com/usc-bienestar/backend/internal/pkg/auth"
	"github.com/usc-bienestar/backend/internal/pkg/logger"
)

// AuthService defines the interface for registration and login
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterUserRequest) (int64, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	users UserStore
	jwt   *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore, jwt *auth.JWTService) AuthService {
	return &authServiceImpl{
		users: users,
		jwt:   jwt,
	}
}

// Register creates a new user with a hashed password. The identifier and
// email must both be unused.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterUserRequest) (int64, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:       req.Name,
		Identifier: req.Identifier,
		Email:      req.Email,
		Password:   hashed,
	}

	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return 0, apperrors.ErrUserAlreadyExists
		}
		return 0, fmt.Errorf("error registering user: %w", err)
	}

	logger.Info().Int64("userID", id).Int64("identifier", req.Identifier).Msg("User registered")
	return id, nil
}

// Login verifies credentials and resolves the caller's role. The
// administrative profile wins over the student profile; users with
// neither resolve as Indefinido. No token is issued on any failure.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.GetByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	resp := &dto.LoginResponse{
		Message:    "Inicio de sesion exitoso",
		Name:       user.Name,
		Identifier: user.Identifier,
	}

	role := models.RoleLabelUndefined
	area := ""

	admin, err := s.users.GetAdministrative(ctx, user.ID)
	switch {
	case err == nil:
		role = string(admin.Role)
		area = admin.Area
		resp.Area = admin.Area
	case errors.Is(err, apperrors.ErrResourceNotFound):
		student, err := s.users.GetStudent(ctx, user.ID)
		switch {
		case err == nil:
			role = models.RoleLabelStudent
			semester := student.Semester
			resp.Semester = &semester
			if student.Career != nil {
				careerName := student.Career.Name
				resp.Career = &careerName
			}
		case errors.Is(err, apperrors.ErrResourceNotFound):
			// No role profile at all, fall through as Indefinido
		default:
			return nil, fmt.Errorf("error resolving student profile: %w", err)
		}
	default:
		return nil, fmt.Errorf("error resolving administrative profile: %w", err)
	}

	resp.Role = role

	token, expiresIn, err := s.jwt.GenerateToken(user.Identifier, user.Name, role, area)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	resp.Token = token
	resp.ExpiresIn = expiresIn

	return resp, nil
}
