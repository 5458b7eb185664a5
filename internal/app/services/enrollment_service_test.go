package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/usc-bienestar/backend/internal/app/models"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
)

type enrollmentFixture struct {
	users       *mockUserStore
	courses     *mockCourseStore
	sessions    *mockSessionStore
	enrollments *mockEnrollmentStore
	svc         EnrollmentService
}

func newEnrollmentFixture() *enrollmentFixture {
	users := newMockUserStore()
	sessions := newMockSessionStore()
	courses := newMockCourseStore(sessions)
	enrollments := newMockEnrollmentStore(sessions, users)
	return &enrollmentFixture{
		users:       users,
		courses:     courses,
		sessions:    sessions,
		enrollments: enrollments,
		svc:         NewEnrollmentService(enrollments, sessions, courses, users),
	}
}

func (f *enrollmentFixture) addUser(identifier int64) *models.User {
	user := &models.User{Name: "Usuario", Identifier: identifier, Email: fmt.Sprintf("u%d@usc.edu.co", identifier)}
	f.users.CreateUser(context.Background(), user)
	return user
}

func (f *enrollmentFixture) addCourse(active bool) *models.Course {
	course := &models.Course{Name: "Natacion", Category: models.CategorySport, Active: active}
	f.courses.Create(context.Background(), course)
	return course
}

func (f *enrollmentFixture) addSession(courseID int64, capacity int32, active bool) *models.Session {
	remaining := capacity
	session := &models.Session{
		CourseID:          courseID,
		Day:               models.WeekdayLunes,
		StartTime:         "08:00:00",
		EndTime:           "10:00:00",
		MaxCapacity:       capacity,
		RemainingCapacity: &remaining,
		Active:            active,
	}
	f.sessions.Create(context.Background(), session)
	return session
}

func TestToggleUnknownUser(t *testing.T) {
	f := newEnrollmentFixture()
	course := f.addCourse(true)
	session := f.addSession(course.ID, 10, true)

	_, err := f.svc.Toggle(context.Background(), session.ID, course.ID, 404)
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestToggleUnknownSession(t *testing.T) {
	f := newEnrollmentFixture()
	f.addUser(1001)
	course := f.addCourse(true)

	_, err := f.svc.Toggle(context.Background(), 99, course.ID, 1001)
	if !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestToggleSessionCourseMismatch(t *testing.T) {
	f := newEnrollmentFixture()
	f.addUser(1001)
	courseA := f.addCourse(true)
	courseB := f.addCourse(true)
	session := f.addSession(courseA.ID, 10, true)

	_, err := f.svc.Toggle(context.Background(), session.ID, courseB.ID, 1001)
	if !errors.Is(err, apperrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for mismatched pair, got %v", err)
	}
}

func TestToggleInactiveCourse(t *testing.T) {
	f := newEnrollmentFixture()
	f.addUser(1001)
	course := f.addCourse(false)
	session := f.addSession(course.ID, 10, true)

	_, err := f.svc.Toggle(context.Background(), session.ID, course.ID, 1001)
	if !errors.Is(err, apperrors.ErrCourseInactive) {
		t.Fatalf("expected ErrCourseInactive, got %v", err)
	}
}

func TestToggleInactiveSession(t *testing.T) {
	f := newEnrollmentFixture()
	f.addUser(1001)
	course := f.addCourse(true)
	session := f.addSession(course.ID, 10, false)

	_, err := f.svc.Toggle(context.Background(), session.ID, course.ID, 1001)
	if !errors.Is(err, apperrors.ErrSessionInactive) {
		t.Fatalf("expected ErrSessionInactive, got %v", err)
	}
}

func TestToggleEnrollsThenCancels(t *testing.T) {
	f := newEnrollmentFixture()
	user := f.addUser(1001)
	course := f.addCourse(true)
	session := f.addSession(course.ID, 10, true)

	action, err := f.svc.Toggle(context.Background(), session.ID, course.ID, 1001)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if action != ActionEnrolled {
		t.Fatalf("expected %q, got %q", ActionEnrolled, action)
	}
	if *session.RemainingCapacity != 9 {
		t.Errorf("expected remaining capacity 9, got %d", *session.RemainingCapacity)
	}
	if enrolled, _ := f.enrollments.Exists(context.Background(), session.ID, user.ID); !enrolled {
		t.Error("expected an enrollment row after toggle")
	}

	action, err = f.svc.Toggle(context.Background(), session.ID, course.ID, 1001)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if action != ActionCancelled {
		t.Fatalf("expected %q, got %q", ActionCancelled, action)
	}
	if *session.RemainingCapacity != 10 {
		t.Errorf("expected remaining capacity restored to 10, got %d", *session.RemainingCapacity)
	}
	if enrolled, _ := f.enrollments.Exists(context.Background(), session.ID, user.ID); enrolled {
		t.Error("expected no enrollment row after cancel")
	}
}

func TestToggleLastSeat(t *testing.T) {
	f := newEnrollmentFixture()
	f.addUser(1001)
	f.addUser(1002)
	course := f.addCourse(true)
	session := f.addSession(course.ID, 1, true)

	if _, err := f.svc.Toggle(context.Background(), session.ID, course.ID, 1001); err != nil {
		t.Fatalf("first user toggle failed: %v", err)
	}

	_, err := f.svc.Toggle(context.Background(), session.ID, course.ID, 1002)
	if !errors.Is(err, apperrors.ErrNoCapacity) {
		t.Fatalf("expected ErrNoCapacity for second user, got %v", err)
	}

	// The seat comes back after a cancel
	if _, err := f.svc.Toggle(context.Background(), session.ID, course.ID, 1001); err != nil {
		t.Fatalf("cancel toggle failed: %v", err)
	}
	action, err := f.svc.Toggle(context.Background(), session.ID, course.ID, 1002)
	if err != nil {
		t.Fatalf("second user toggle after free seat failed: %v", err)
	}
	if action != ActionEnrolled {
		t.Fatalf("expected %q, got %q", ActionEnrolled, action)
	}
}

func TestToggleUntrackedCapacity(t *testing.T) {
	f := newEnrollmentFixture()
	f.addUser(1001)
	f.addUser(1002)
	course := f.addCourse(true)
	session := f.addSession(course.ID, 1, true)
	session.RemainingCapacity = nil

	for _, identifier := range []int64{1001, 1002} {
		action, err := f.svc.Toggle(context.Background(), session.ID, course.ID, identifier)
		if err != nil {
			t.Fatalf("toggle for %d failed: %v", identifier, err)
		}
		if action != ActionEnrolled {
			t.Fatalf("expected %q, got %q", ActionEnrolled, action)
		}
	}
}
