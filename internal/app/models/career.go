package models

// Career represents a major within a faculty. The catalog is fixed and
// seeded at startup; new careers are schema changes, not runtime data.
type Career struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Faculty Faculty `json:"faculty"`
}
