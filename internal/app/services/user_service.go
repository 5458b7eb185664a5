package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/usc-bienestar/backend/internal/app/models"
	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
	"github.com/usc-bienestar/backend/internal/pkg/logger"
)

// RoleAction reports which explicit verb a role toggle resolved into
type RoleAction string

const (
	RoleGranted RoleAction = "granted"
	RoleRevoked RoleAction = "revoked"
)

// UserService defines role-profile management operations
type UserService interface {
	// ToggleAdminRole grants the administrative profile when the user has
	// none and revokes it otherwise. Intent is derived from persisted
	// state; GrantAdminRole and RevokeAdminRole are the explicit verbs.
	ToggleAdminRole(ctx context.Context, identifier int64, req *dto.ToggleRoleRequest) (RoleAction, error)
	GrantAdminRole(ctx context.Context, identifier int64, role models.AdminRole, area string) error
	RevokeAdminRole(ctx context.Context, identifier int64) error
	RegisterStudentProfile(ctx context.Context, identifier int64, req *dto.RegisterStudentRequest) (int64, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	users   UserStore
	careers CareerStore
}

// NewUserService creates a new user service instance
func NewUserService(users UserStore, careers CareerStore) UserService {
	return &userServiceImpl{
		users:   users,
		careers: careers,
	}
}

func (s *userServiceImpl) ToggleAdminRole(ctx context.Context, identifier int64, req *dto.ToggleRoleRequest) (RoleAction, error) {
	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return "", err
	}

	_, err = s.users.GetAdministrative(ctx, user.ID)
	switch {
	case err == nil:
		if err := s.RevokeAdminRole(ctx, identifier); err != nil {
			return "", err
		}
		return RoleRevoked, nil
	case errors.Is(err, apperrors.ErrResourceNotFound):
		if err := s.GrantAdminRole(ctx, identifier, models.AdminRole(req.Role), req.Area); err != nil {
			return "", err
		}
		return RoleGranted, nil
	default:
		return "", fmt.Errorf("error checking administrative profile: %w", err)
	}
}

func (s *userServiceImpl) GrantAdminRole(ctx context.Context, identifier int64, role models.AdminRole, area string) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown administrative role %q", apperrors.ErrValidationFailed, role)
	}

	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return err
	}

	if err := s.users.CreateAdministrative(ctx, &models.Administrative{
		UserID: user.ID,
		Area:   area,
		Role:   role,
	}); err != nil {
		return fmt.Errorf("error granting administrative role: %w", err)
	}

	logger.Info().Int64("identifier", identifier).Str("role", string(role)).Msg("Administrative role granted")
	return nil
}

func (s *userServiceImpl) RevokeAdminRole(ctx context.Context, identifier int64) error {
	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return err
	}

	if err := s.users.DeleteAdministrative(ctx, user.ID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
		return fmt.Errorf("error revoking administrative role: %w", err)
	}

	logger.Info().Int64("identifier", identifier).Msg("Administrative role revoked")
	return nil
}

// RegisterStudentProfile attaches the student role profile to a user so
// login can resolve them as Estudiante.
func (s *userServiceImpl) RegisterStudentProfile(ctx context.Context, identifier int64, req *dto.RegisterStudentRequest) (int64, error) {
	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return 0, err
	}

	if _, err := s.careers.GetByID(ctx, req.CareerID); err != nil {
		return 0, err
	}

	id, err := s.users.CreateStudent(ctx, &models.Student{
		UserID:   user.ID,
		CareerID: req.CareerID,
		Semester: req.Semester,
	})
	if err != nil {
		return 0, fmt.Errorf("error creating student profile: %w", err)
	}

	return id, nil
}
