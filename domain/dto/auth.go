package dto

import (
	"github.com/DsDac0/Website/domain/models"
)

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
}

type AdminUserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type AdminLoginResponse struct {
	Message string             `json:"message"`
	User    *AdminUserResponse `json:"user"`
}

type AuthCheckResponse struct {
	IsAuthenticated bool               `json:"isAuthenticated"`
	User            *AdminUserResponse `json:"user"`
}

func AdminUserToResponse(a *models.AdminUser) *AdminUserResponse {
	if a == nil {
		return nil
	}
	resp := &AdminUserResponse{
		ID:        a.ID,
		Username:  a.Username,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
	if a.Email != nil {
		resp.Email = *a.Email
	}
	return resp
}
