package services

import (
	"context"
	"time"

	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
	"github.com/usc-bienestar/backend/internal/pkg/logger"
)

// EnrollmentAction reports which explicit verb a toggle resolved into
type EnrollmentAction string

const (
	ActionEnrolled  EnrollmentAction = "enrolled"
	ActionCancelled EnrollmentAction = "cancelled"
)

// EnrollmentService defines enrollment operations
type EnrollmentService interface {
	// Toggle enrolls the user when no enrollment exists and cancels it
	// otherwise. Intent is derived from persisted state; Enroll and
	// Cancel are the explicit verbs.
	Toggle(ctx context.Context, sessionID, courseID, identifier int64) (EnrollmentAction, error)
	Enroll(ctx context.Context, sessionID, userID int64) error
	Cancel(ctx context.Context, sessionID, userID int64) error
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	enrollments EnrollmentStore
	sessions    SessionStore
	courses     CourseStore
	users       UserStore
	now         func() time.Time
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollments EnrollmentStore, sessions SessionStore, courses CourseStore, users UserStore) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollments: enrollments,
		sessions:    sessions,
		courses:     courses,
		users:       users,
		now:         time.Now,
	}
}

func (s *enrollmentServiceImpl) Toggle(ctx context.Context, sessionID, courseID, identifier int64) (EnrollmentAction, error) {
	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return "", err
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if session.CourseID != courseID {
		return "", apperrors.ErrSessionNotFound
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return "", err
	}
	if !course.Active {
		return "", apperrors.ErrCourseInactive
	}
	if !session.Active {
		return "", apperrors.ErrSessionInactive
	}

	enrolled, err := s.enrollments.Exists(ctx, sessionID, user.ID)
	if err != nil {
		return "", err
	}

	if enrolled {
		if err := s.Cancel(ctx, sessionID, user.ID); err != nil {
			return "", err
		}
		return ActionCancelled, nil
	}

	if err := s.Enroll(ctx, sessionID, user.ID); err != nil {
		return "", err
	}
	return ActionEnrolled, nil
}

func (s *enrollmentServiceImpl) Enroll(ctx context.Context, sessionID, userID int64) error {
	if err := s.enrollments.Enroll(ctx, sessionID, userID, s.now().UTC()); err != nil {
		return err
	}
	logger.Info().Int64("sessionID", sessionID).Int64("userID", userID).Msg("Enrollment created")
	return nil
}

func (s *enrollmentServiceImpl) Cancel(ctx context.Context, sessionID, userID int64) error {
	if err := s.enrollments.Cancel(ctx, sessionID, userID); err != nil {
		return err
	}
	logger.Info().Int64("sessionID", sessionID).Int64("userID", userID).Msg("Enrollment cancelled")
	return nil
}
