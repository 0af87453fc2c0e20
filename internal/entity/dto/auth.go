package dto

import "time"

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest carries the verification link parameters. They may
// arrive in the JSON body or in the query string.
type VerifyEmailRequest struct {
	Email string `json:"email" form:"email"`
	Token string `json:"token" form:"token"`
}

// ForgotPasswordRequest asks for a password reset email.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest sets a new password; the token comes from the path.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,max=72"`
}

// AuthResponse is returned after registration or login. The session token
// itself only travels in the cookie.
type AuthResponse struct {
	User      UserSummary `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// MessageResponse is the generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
