package services

import (
	"context"
	"fmt"

	"github.com/usc-bienestar/backend/internal/app/models"
	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
	"github.com/usc-bienestar/backend/internal/pkg/helpers"
	"github.com/usc-bienestar/backend/internal/pkg/logger"
)

// SessionService defines session ("horario") management operations
type SessionService interface {
	Create(ctx context.Context, req *dto.CreateSessionRequest) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	sessions SessionStore
	courses  CourseStore
}

// NewSessionService creates a new session service instance
func NewSessionService(sessions SessionStore, courses CourseStore) SessionService {
	return &sessionServiceImpl{
		sessions: sessions,
		courses:  courses,
	}
}

// Create validates the clock values and registers the session. The
// remaining capacity starts equal to the maximum capacity.
func (s *sessionServiceImpl) Create(ctx context.Context, req *dto.CreateSessionRequest) (int64, error) {
	if _, err := s.courses.GetByID(ctx, req.CourseID); err != nil {
		return 0, err
	}

	start, err := helpers.ParseClock(req.StartTime)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid start time %q", apperrors.ErrValidationFailed, req.StartTime)
	}
	end, err := helpers.ParseClock(req.EndTime)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid end time %q", apperrors.ErrValidationFailed, req.EndTime)
	}
	if end <= start {
		return 0, fmt.Errorf("%w: end time must be after start time", apperrors.ErrValidationFailed)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	remaining := req.MaxCapacity

	session := &models.Session{
		CourseID:          req.CourseID,
		Day:               req.Day,
		StartTime:         start,
		EndTime:           end,
		Instructor:        req.Instructor,
		MaxCapacity:       req.MaxCapacity,
		RemainingCapacity: &remaining,
		Active:            active,
	}

	id, err := s.sessions.Create(ctx, session)
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("sessionID", id).Int64("courseID", req.CourseID).Msg("Session created")
	return id, nil
}

func (s *sessionServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("sessionID", id).Msg("Session deleted")
	return nil
}
