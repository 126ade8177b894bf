package session

import (
	"context"
	"time"
)

// Clock источник текущего времени; тесты подставляют управляемые часы
type Clock interface {
	Now() time.Time
}

// RealClock системные часы
type RealClock struct{}

// Now возвращает текущее время
func (RealClock) Now() time.Time {
	return time.Now()
}

// Store внешнее хранилище метаданных сессий (redis).
// Инвентарь мест в хранилище не попадает.
type Store interface {
	Save(ctx context.Context, rec Record, ttl time.Duration) error
	Load(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Gauge метрика количества активных сессий
type Gauge interface {
	SetActiveSessions(n int)
}
