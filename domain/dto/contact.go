package dto

import (
	"time"

	"github.com/DsDac0/Website/domain/models"
)

type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Email   string `json:"email" validate:"required,looseemail,max=255"`
	Phone   string `json:"phone" validate:"omitempty,max=50"`
	Message string `json:"message" validate:"required"`
}

func (r *CreateContactMessageRequest) Normalize() {
	r.Name = trim(r.Name)
	r.Email = trim(r.Email)
	r.Phone = trim(r.Phone)
	r.Message = trim(r.Message)
}

type ContactMessageResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func ContactMessageToResponse(m *models.ContactMessage) *ContactMessageResponse {
	if m == nil {
		return nil
	}
	return &ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func ContactMessagesToResponses(messages []*models.ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, *ContactMessageToResponse(m))
	}
	return out
}

func CreateContactRequestToModel(r *CreateContactMessageRequest) *models.ContactMessage {
	return &models.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}
