package handler

import "github.com/pruthvirajtarode/backendProject/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=50,alphaspace"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,password"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=2,max=50,alphaspace"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6,password"`
}

// authPayload is the data section returned by register and login.
type authPayload struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// userPayload wraps a single user for the data section.
type userPayload struct {
	User *domain.User `json:"user"`
}
