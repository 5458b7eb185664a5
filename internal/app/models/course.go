package models

// Course defines a wellness course stored in the 'courses' table
type Course struct {
	ID          int64          `json:"id" db:"id" example:"3"`
	Name        string         `json:"name" db:"name" example:"Natacion"`
	Category    CourseCategory `json:"category" db:"category" example:"Deporte Formativo"`
	Description *string        `json:"description,omitempty" db:"description"`
	Image       string         `json:"image" db:"image"` // URL of the course image
	Active      bool           `json:"active" db:"active"`
}

// Session defines a scheduled class of a course ("horario"). A nil
// RemainingCapacity means capacity tracking is disabled for the session.
type Session struct {
	ID                int64   `json:"id" db:"id"`
	CourseID          int64   `json:"courseId" db:"course_id"`
	Day               Weekday `json:"day" db:"day"`
	StartTime         string  `json:"startTime" db:"start_time"` // HH:MM:SS
	EndTime           string  `json:"endTime" db:"end_time"`     // HH:MM:SS
	Instructor        *string `json:"instructor,omitempty" db:"instructor"`
	MaxCapacity       int32   `json:"maxCapacity" db:"max_capacity"`
	RemainingCapacity *int32  `json:"remainingCapacity,omitempty" db:"remaining_capacity"`
	Active            bool    `json:"active" db:"active"`
}
