package models

import (
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/session"
)

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse токен и данные пользователя
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	IdleLimit int          `json:"idleTimeoutSeconds"`
	User      UserResponse `json:"user"`
}

// UserResponse пользователь текущей сессии
type UserResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Role        string             `json:"role"`
	Permissions domain.Permissions `json:"permissions"`
	SessionID   string             `json:"sessionId"`
}

// FromRecord конвертирует метаданные сессии в DTO
func FromRecord(rec session.Record) UserResponse {
	return UserResponse{
		ID:          rec.UserID,
		Name:        rec.UserName,
		Email:       rec.Email,
		Role:        string(rec.Role),
		Permissions: rec.Permissions,
		SessionID:   rec.ID,
	}
}
