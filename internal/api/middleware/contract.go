package middleware

import (
	"context"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/session"
)

// Authenticator проверяет токен и возвращает сессию
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*session.Session, error)
}

// HTTPMetrics метрики HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
