package packages

import (
	"context"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// ParcelRepository интерфейс репозитория посылок
type ParcelRepository interface {
	Create(ctx context.Context, parcel *domain.Parcel) (*domain.Parcel, error)
	GetByID(ctx context.Context, id string) (*domain.Parcel, error)
	TrackingCodeExists(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, filter domain.ParcelsFilter) ([]*domain.Parcel, error)
	Update(ctx context.Context, parcel *domain.Parcel) error
	Delete(ctx context.Context, id string) error
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PackageCreated(ctx context.Context, parcel *domain.Parcel)
	PackageStatusChanged(ctx context.Context, parcel *domain.Parcel)
}

// Metrics бизнес-метрики посылок
type Metrics interface {
	IncPackageCreated()
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в поясе компании
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
