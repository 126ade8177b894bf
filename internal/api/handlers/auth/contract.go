package auth

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/service/auth/models"
	"github.com/m04kA/WJL-TicketService/internal/session"
)

type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, sessionID string)
	Me(sess *session.Session) models.UserResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
