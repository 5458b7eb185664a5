package dto

import "github.com/usc-bienestar/backend/internal/app/models"

// CreateCourseRequest represents course creation data. The same shape is
// used for updates, which overwrite every mutable field.
type CreateCourseRequest struct {
	Name        string                `json:"name" binding:"required"`
	Category    models.CourseCategory `json:"category" binding:"required,coursecategory"`
	Description *string               `json:"description"`
	Image       string                `json:"image" binding:"required,url"`
	Active      *bool                 `json:"active"`
}

// CreateSessionRequest represents session ("horario") creation data
type CreateSessionRequest struct {
	CourseID    int64          `json:"courseId" binding:"required,min=1"`
	Day         models.Weekday `json:"day" binding:"required,weekday"`
	StartTime   string         `json:"startTime" binding:"required"` // HH:MM or HH:MM:SS
	EndTime     string         `json:"endTime" binding:"required"`
	Instructor  *string        `json:"instructor"`
	MaxCapacity int32          `json:"maxCapacity" binding:"required,min=1"`
	Active      *bool          `json:"active"`
}

// SessionView is a session as listed for a given user, including whether
// that user is currently enrolled.
type SessionView struct {
	ID                int64          `json:"id"`
	Day               models.Weekday `json:"day"`
	StartTime         string         `json:"startTime"`
	EndTime           string         `json:"endTime"`
	Instructor        *string        `json:"instructor"`
	RemainingCapacity *int32         `json:"remainingCapacity"`
	Active            bool           `json:"active"`
	Enrolled          bool           `json:"enrolled"`
}

// CourseSessionsResponse wraps the session list of a course
type CourseSessionsResponse struct {
	Sessions []SessionView `json:"sessions"`
}
