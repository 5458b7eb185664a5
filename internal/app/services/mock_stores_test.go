package services

import (
	"context"
	"sort"
	"time"

	"github.com/usc-bienestar/backend/internal/app/models"
	"github.com/usc-bienestar/backend/internal/pkg/apperrors"
)

// ── Mock UserStore ──

type mockUserStore struct {
	nextID   int64
	users    map[int64]*models.User // keyed by identifier
	admins   map[int64]*models.Administrative
	students map[int64]*models.Student
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{
		nextID:   1,
		users:    make(map[int64]*models.User),
		admins:   make(map[int64]*models.Administrative),
		students: make(map[int64]*models.Student),
	}
}

func (m *mockUserStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range m.users {
		if u.Identifier == user.Identifier || u.Email == user.Email {
			return 0, apperrors.ErrUserAlreadyExists
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.Identifier] = user
	return user.ID, nil
}

func (m *mockUserStore) GetByIdentifier(_ context.Context, identifier int64) (*models.User, error) {
	if u, ok := m.users[identifier]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserStore) GetAdministrative(_ context.Context, userID int64) (*models.Administrative, error) {
	if a, ok := m.admins[userID]; ok {
		return a, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *mockUserStore) CreateAdministrative(_ context.Context, admin *models.Administrative) error {
	if _, ok := m.admins[admin.UserID]; ok {
		return apperrors.ErrConflict
	}
	m.admins[admin.UserID] = admin
	return nil
}

func (m *mockUserStore) DeleteAdministrative(_ context.Context, userID int64) error {
	if _, ok := m.admins[userID]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(m.admins, userID)
	return nil
}

func (m *mockUserStore) GetStudent(_ context.Context, userID int64) (*models.Student, error) {
	if s, ok := m.students[userID]; ok {
		return s, nil
	}
	return nil, apperrors.ErrResourceNotFound
}

func (m *mockUserStore) CreateStudent(_ context.Context, student *models.Student) (int64, error) {
	if _, ok := m.students[student.UserID]; ok {
		return 0, apperrors.ErrConflict
	}
	student.ID = m.nextID
	m.nextID++
	m.students[student.UserID] = student
	return student.ID, nil
}

// ── Mock CareerStore ──

type mockCareerStore struct {
	careers map[int64]*models.Career
}

func newMockCareerStore() *mockCareerStore {
	return &mockCareerStore{careers: make(map[int64]*models.Career)}
}

func (m *mockCareerStore) GetByID(_ context.Context, id int64) (*models.Career, error) {
	if c, ok := m.careers[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCareerNotFound
}

func (m *mockCareerStore) GetAll(_ context.Context) ([]*models.Career, error) {
	var result []*models.Career
	for _, c := range m.careers {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock CourseStore ──

// mockCourseStore mirrors the schema's ON DELETE CASCADE against the mock
// session store, the same way the enrollment store mirrors capacity.
type mockCourseStore struct {
	nextID   int64
	courses  map[int64]*models.Course
	sessions *mockSessionStore
}

func newMockCourseStore(sessions *mockSessionStore) *mockCourseStore {
	return &mockCourseStore{nextID: 1, courses: make(map[int64]*models.Course), sessions: sessions}
}

func (m *mockCourseStore) Create(_ context.Context, course *models.Course) (int64, error) {
	course.ID = m.nextID
	m.nextID++
	m.courses[course.ID] = course
	return course.ID, nil
}

func (m *mockCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (m *mockCourseStore) GetAll(_ context.Context, category *models.CourseCategory) ([]*models.Course, error) {
	var result []*models.Course
	for _, c := range m.courses {
		if category != nil && c.Category != *category {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := m.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	m.courses[course.ID] = course
	return nil
}

func (m *mockCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(m.courses, id)
	if m.sessions != nil {
		m.sessions.deleteByCourse(id)
	}
	return nil
}

// ── Mock SessionStore ──

type mockSessionStore struct {
	nextID      int64
	sessions    map[int64]*models.Session
	enrollments *mockEnrollmentStore
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{nextID: 1, sessions: make(map[int64]*models.Session)}
}

func (m *mockSessionStore) Create(_ context.Context, session *models.Session) (int64, error) {
	session.ID = m.nextID
	m.nextID++
	m.sessions[session.ID] = session
	return session.ID, nil
}

func (m *mockSessionStore) GetByID(_ context.Context, id int64) (*models.Session, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, apperrors.ErrSessionNotFound
}

func (m *mockSessionStore) ListByCourse(_ context.Context, courseID int64) ([]*models.Session, error) {
	var result []*models.Session
	for _, s := range m.sessions {
		if s.CourseID == courseID {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Day != result[j].Day {
			return result[i].Day.Order() < result[j].Day.Order()
		}
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

func (m *mockSessionStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.sessions[id]; !ok {
		return apperrors.ErrSessionNotFound
	}
	delete(m.sessions, id)
	if m.enrollments != nil {
		m.enrollments.deleteBySession(id)
	}
	return nil
}

func (m *mockSessionStore) deleteByCourse(courseID int64) {
	for id, s := range m.sessions {
		if s.CourseID != courseID {
			continue
		}
		delete(m.sessions, id)
		if m.enrollments != nil {
			m.enrollments.deleteBySession(id)
		}
	}
}

// ── Mock EnrollmentStore ──

type enrollmentKey struct {
	sessionID int64
	userID    int64
}

type enrollmentRecord struct {
	user       *models.User
	enrolledAt time.Time
}

// mockEnrollmentStore mirrors the transactional capacity semantics of the
// pgx-backed repository against the mock session store.
type mockEnrollmentStore struct {
	sessions    *mockSessionStore
	users       *mockUserStore
	enrollments map[enrollmentKey]*enrollmentRecord
}

func newMockEnrollmentStore(sessions *mockSessionStore, users *mockUserStore) *mockEnrollmentStore {
	store := &mockEnrollmentStore{
		sessions:    sessions,
		users:       users,
		enrollments: make(map[enrollmentKey]*enrollmentRecord),
	}
	// Session deletes cascade into enrollments, as in the schema
	sessions.enrollments = store
	return store
}

func (m *mockEnrollmentStore) Exists(_ context.Context, sessionID, userID int64) (bool, error) {
	_, ok := m.enrollments[enrollmentKey{sessionID, userID}]
	return ok, nil
}

func (m *mockEnrollmentStore) Enroll(_ context.Context, sessionID, userID int64, enrolledAt time.Time) error {
	session, ok := m.sessions.sessions[sessionID]
	if !ok {
		return apperrors.ErrSessionNotFound
	}
	if _, exists := m.enrollments[enrollmentKey{sessionID, userID}]; exists {
		return apperrors.ErrAlreadyEnrolled
	}
	if session.RemainingCapacity != nil {
		if *session.RemainingCapacity <= 0 {
			return apperrors.ErrNoCapacity
		}
		*session.RemainingCapacity--
	}

	var user *models.User
	for _, u := range m.users.users {
		if u.ID == userID {
			user = u
			break
		}
	}
	m.enrollments[enrollmentKey{sessionID, userID}] = &enrollmentRecord{user: user, enrolledAt: enrolledAt}
	return nil
}

func (m *mockEnrollmentStore) Cancel(_ context.Context, sessionID, userID int64) error {
	key := enrollmentKey{sessionID, userID}
	if _, ok := m.enrollments[key]; !ok {
		return apperrors.ErrNotEnrolled
	}
	delete(m.enrollments, key)

	if session, ok := m.sessions.sessions[sessionID]; ok && session.RemainingCapacity != nil {
		if *session.RemainingCapacity < session.MaxCapacity {
			*session.RemainingCapacity++
		}
	}
	return nil
}

// deleteBySession drops enrollment rows without touching capacity, the
// session row itself is already gone.
func (m *mockEnrollmentStore) deleteBySession(sessionID int64) {
	for key := range m.enrollments {
		if key.sessionID == sessionID {
			delete(m.enrollments, key)
		}
	}
}

func (m *mockEnrollmentStore) ListBySessionWithUsers(_ context.Context, sessionID int64) ([]*models.EnrollmentWithUser, error) {
	var result []*models.EnrollmentWithUser
	for key, rec := range m.enrollments {
		if key.sessionID != sessionID || rec.user == nil {
			continue
		}
		result = append(result, &models.EnrollmentWithUser{
			UserName:       rec.user.Name,
			UserIdentifier: rec.user.Identifier,
			UserEmail:      rec.user.Email,
			EnrolledAt:     rec.enrolledAt,
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EnrolledAt.Before(result[j].EnrolledAt) })
	return result, nil
}
