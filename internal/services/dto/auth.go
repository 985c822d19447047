package dto

import "talentlink/internal/session"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse tells the caller which workspace the identity routes to.
type LoginResponse struct {
	SessionID   string       `json:"session_id"`
	Role        session.Role `json:"role"`
	ProfileID   int          `json:"profile_id"`
	ProfileName string       `json:"profile_name"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterResponse struct {
	RegisteredUser string `json:"registered_user"`
}
