package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is the container for all database repositories
type Repositories struct {
	UserRepository       *UserRepository
	CareerRepository     *CareerRepository
	CourseRepository     *CourseRepository
	SessionRepository    *SessionRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		CareerRepository:     NewCareerRepository(db),
		CourseRepository:     NewCourseRepository(db),
		SessionRepository:    NewSessionRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
