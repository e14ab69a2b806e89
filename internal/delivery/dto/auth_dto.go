package dto

// LoginRequest covers both roles. Secretaries have no password, so the
// field is only required for doctors (checked in the usecase).
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
	Role     string `json:"role" validate:"required,oneof=doctor secretary"`
}

// SessionUser is the session payload echoed back to clients.
type SessionUser struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}
