package dto

import (
	"time"

	"github.com/usc-bienestar/backend/internal/app/models"
)

// ReportUser holds the display fields of an enrolled user
type ReportUser struct {
	Name       string `json:"name"`
	Identifier int64  `json:"identifier"`
	Email      string `json:"email"`
}

// ReportEnrollment is one enrollment row within a session report
type ReportEnrollment struct {
	User       ReportUser `json:"user"`
	EnrolledAt time.Time  `json:"enrolledAt"`
}

// ReportSession aggregates the enrollments of one session
type ReportSession struct {
	Day           models.Weekday     `json:"day"`
	StartTime     string             `json:"startTime"`
	EndTime       string             `json:"endTime"`
	Instructor    *string            `json:"instructor"`
	EnrolledCount int                `json:"enrolledCount"`
	Enrollments   []ReportEnrollment `json:"enrollments"`
}

// ReportCourse is the per-course section of the enrollment report
type ReportCourse struct {
	Name     string                `json:"name"`
	Category models.CourseCategory `json:"category"`
	Sessions []ReportSession       `json:"sessions"`
}
