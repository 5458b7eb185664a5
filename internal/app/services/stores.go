package services

import (
	"context"
	"time"

	"github.com/usc-bienestar/backend/internal/app/models"
)

// Store interfaces consumed by the services. The pgx-backed repositories
// satisfy them; tests substitute in-memory fakes.

// UserStore provides user and role-profile persistence
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetByIdentifier(ctx context.Context, identifier int64) (*models.User, error)
	GetAdministrative(ctx context.Context, userID int64) (*models.Administrative, error)
	CreateAdministrative(ctx context.Context, admin *models.Administrative) error
	DeleteAdministrative(ctx context.Context, userID int64) error
	GetStudent(ctx context.Context, userID int64) (*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (int64, error)
}

// CareerStore provides the career catalog
type CareerStore interface {
	GetByID(ctx context.Context, id int64) (*models.Career, error)
	GetAll(ctx context.Context) ([]*models.Career, error)
}

// CourseStore provides course persistence
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context, category *models.CourseCategory) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// SessionStore provides session persistence
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Session, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Session, error)
	Delete(ctx context.Context, id int64) error
}

// EnrollmentStore provides enrollment persistence. Enroll and Cancel are
// transactional and keep the capacity counter consistent.
type EnrollmentStore interface {
	Exists(ctx context.Context, sessionID, userID int64) (bool, error)
	Enroll(ctx context.Context, sessionID, userID int64, enrolledAt time.Time) error
	Cancel(ctx context.Context, sessionID, userID int64) error
	ListBySessionWithUsers(ctx context.Context, sessionID int64) ([]*models.EnrollmentWithUser, error)
}
