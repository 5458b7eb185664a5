package models

import "time"

// Enrollment links a user to a session. At most one row may exist per
// (session, user) pair, enforced by a unique constraint.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	SessionID  int64     `json:"sessionId" db:"session_id"`
	UserID     int64     `json:"userId" db:"user_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
	Status     bool      `json:"status" db:"status"`
}

// EnrollmentWithUser is an enrollment joined with the display fields of
// the enrolled user, used by the reporting queries.
type EnrollmentWithUser struct {
	UserName       string    `json:"userName" db:"user_name"`
	UserIdentifier int64     `json:"userIdentifier" db:"user_identifier"`
	UserEmail      string    `json:"userEmail" db:"user_email"`
	EnrolledAt     time.Time `json:"enrolledAt" db:"enrolled_at"`
}
