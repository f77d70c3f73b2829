package handler

import "github.com/pruthvirajtarode/backendProject/internal/core/domain"

type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=2,max=50,alphaspace"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Role     *string `json:"role"     validate:"omitempty,oneof=user admin"`
	IsActive *bool   `json:"isActive"`
	Password *string `json:"password" validate:"omitempty,min=6,password"`
}

type listUsersQuery struct {
	Page     int    `query:"page"     validate:"omitempty,min=1"`
	Limit    int    `query:"limit"    validate:"omitempty,min=1,max=100"`
	Role     string `query:"role"     validate:"omitempty,oneof=user admin"`
	IsActive *bool  `query:"isActive"`
}

// usersPayload wraps a user list for the data section.
type usersPayload struct {
	Users []*domain.User `json:"users"`
}
