package dto

import "time"

// APIResponse is the standard envelope for API responses. Either Data or
// Error is set, never both.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// MessageResponse is returned by mutations that only report an outcome
type MessageResponse struct {
	Message string `json:"message" example:"Inscripcion realizada correctamente"`
	ID      int64  `json:"id,omitempty" example:"12"`
}
