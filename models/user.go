package models

// User represents a registered account.
// Password holds the bcrypt hash; never returned in JSON responses.
type User struct {
	ID       int    `json:"id" db:"id"`
	FullName string `json:"full_name" db:"full_name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"` // Hashed; omitted from JSON
}

// RegisterRequest represents the POST /register body
type RegisterRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest for /login (cookie session)
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents PUT /profile
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
}

// ChangePasswordRequest represents PUT /profile/password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// MeResponse is the session user returned by GET /me
type MeResponse struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
