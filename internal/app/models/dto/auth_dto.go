package dto

// RegisterUserRequest represents a user registration request
type RegisterUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Identifier int64  `json:"identifier" binding:"required,min=1"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
}

// RegisterUserResponse carries the id assigned to the new user
type RegisterUserResponse struct {
	Message string `json:"message" example:"Usuario registrado correctamente"`
	UserID  int64  `json:"userId" example:"7"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Identifier int64  `json:"identifier" binding:"required,min=1"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse represents the role-resolved profile returned on a
// successful login. Exactly one of the role-specific field groups is set:
// Area for administratives, Semester/Career for students, neither for the
// undefined role.
type LoginResponse struct {
	Message    string  `json:"message" example:"Inicio de sesion exitoso"`
	Name       string  `json:"name"`
	Identifier int64   `json:"identifier"`
	Role       string  `json:"role" example:"Estudiante"`
	Area       string  `json:"area,omitempty"`
	Semester   *int    `json:"semester,omitempty"`
	Career     *string `json:"career,omitempty"`
	Token      string  `json:"token"`
	ExpiresIn  int     `json:"expiresIn"`
}

// ToggleRoleRequest carries the profile fields used when the toggle
// results in a grant; they are ignored on revoke.
type ToggleRoleRequest struct {
	Role string `json:"role" binding:"required,adminrole"`
	Area string `json:"area" binding:"required"`
}

// RegisterStudentRequest creates the student role profile for a user
type RegisterStudentRequest struct {
	CareerID int64 `json:"careerId" binding:"required,min=1"`
	Semester int   `json:"semester" binding:"required,min=1,max=12"`
}
