package services

import (
	"context"
	"fmt"

	"github.com/usc-bienestar/backend/internal/app/models"
	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
	"github.com/usc-bienestar/backend/internal/pkg/logger"
)

// CourseService defines course catalog operations
type CourseService interface {
	List(ctx context.Context, category *models.CourseCategory) ([]*models.Course, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (int64, error)
	// Update overwrites every mutable field of the course with the
	// request values, absent optional fields included.
	Update(ctx context.Context, id int64, req *dto.CreateCourseRequest) error
	Delete(ctx context.Context, id int64) error
	// ListSessions returns the sessions of a course with the enrolled
	// flag resolved for the given user identifier.
	ListSessions(ctx context.Context, courseID int64, identifier int64) (*dto.CourseSessionsResponse, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courses     CourseStore
	sessions    SessionStore
	enrollments EnrollmentStore
	users       UserStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore, sessions SessionStore, enrollments EnrollmentStore, users UserStore) CourseService {
	return &courseServiceImpl{
		courses:     courses,
		sessions:    sessions,
		enrollments: enrollments,
		users:       users,
	}
}

func (s *courseServiceImpl) List(ctx context.Context, category *models.CourseCategory) ([]*models.Course, error) {
	if category != nil && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown course category %q", apperrors.ErrValidationFailed, *category)
	}

	courses, err := s.courses.GetAll(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return courses, nil
}

func (s *courseServiceImpl) Create(ctx context.Context, req *dto.CreateCourseRequest) (int64, error) {
	course := courseFromRequest(req)

	id, err := s.courses.Create(ctx, course)
	if err != nil {
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	logger.Info().Int64("courseID", id).Str("name", course.Name).Msg("Course created")
	return id, nil
}

func (s *courseServiceImpl) Update(ctx context.Context, id int64, req *dto.CreateCourseRequest) error {
	course := courseFromRequest(req)
	course.ID = id

	if err := s.courses.Update(ctx, course); err != nil {
		return err
	}

	logger.Info().Int64("courseID", id).Msg("Course updated")
	return nil
}

func (s *courseServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}

func (s *courseServiceImpl) ListSessions(ctx context.Context, courseID int64, identifier int64) (*dto.CourseSessionsResponse, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessions.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}

	resp := &dto.CourseSessionsResponse{Sessions: make([]dto.SessionView, 0, len(sessions))}
	for _, sess := range sessions {
		enrolled, err := s.enrollments.Exists(ctx, sess.ID, user.ID)
		if err != nil {
			return nil, fmt.Errorf("error checking enrollment: %w", err)
		}
		resp.Sessions = append(resp.Sessions, dto.SessionView{
			ID:                sess.ID,
			Day:               sess.Day,
			StartTime:         sess.StartTime,
			EndTime:           sess.EndTime,
			Instructor:        sess.Instructor,
			RemainingCapacity: sess.RemainingCapacity,
			Active:            sess.Active,
			Enrolled:          enrolled,
		})
	}
	return resp, nil
}

func courseFromRequest(req *dto.CreateCourseRequest) *models.Course {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &models.Course{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Active:      active,
	}
}
