package models

// User defines the identity record stored in the 'users' table
type User struct {
	ID         int64   `json:"id" db:"id" example:"1"`                              // Internal primary key
	Name       string  `json:"name" db:"name" example:"Ana Maria Rios"`             // Display name
	Identifier int64   `json:"identifier" db:"identifier" example:"1143987654"`     // National-ID style external identifier (unique)
	Email      string  `json:"email" db:"email" example:"ana.rios@usc.edu.co"`      // Email address (unique)
	Password   string  `json:"-" db:"password_hash"`                                // Hashed password (excluded from JSON)
	Phone      *string `json:"phone,omitempty" db:"phone"`                          // Optional contact phone
	Gender     *Gender `json:"gender,omitempty" db:"gender"`                        // Optional demographic
	Ethnicity  *string `json:"ethnicity,omitempty" db:"ethnicity"`                  // Optional demographic
	Disability *string `json:"disability,omitempty" db:"disability"`                // Optional demographic
}

// Student defines the student role profile stored in the 'students' table.
// At most one per user; presence makes the user resolve as Estudiante.
type Student struct {
	ID       int64 `json:"id" db:"id"`
	UserID   int64 `json:"userId" db:"user_id"`
	CareerID int64 `json:"careerId" db:"career_id"`
	Semester int   `json:"semester" db:"semester"`

	Career *Career `json:"career,omitempty"` // Relation, no db tag
}

// Administrative defines the staff role profile stored in the
// 'administratives' table, keyed by the owning user's id. Presence of the
// row grants the role; deletion revokes it.
type Administrative struct {
	UserID int64     `json:"userId" db:"user_id"`
	Area   string    `json:"area" db:"area"`
	Role   AdminRole `json:"role" db:"role"`
}
