package create_sale

import (
	"context"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// SaleRepository интерфейс репозитория продаж
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	IsSeatTaken(ctx context.Context, routeID int64, travelDate, scheduleTime string, seat int, excludeID string) (bool, error)
}

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
}

// DriverRepository интерфейс репозитория водителей
type DriverRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// LocalInventory инвентарь мест сессии, обновляемый после подтверждения записи
type LocalInventory interface {
	Book(sale *domain.Sale)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	SaleCreated(ctx context.Context, sale *domain.Sale)
}

// Metrics бизнес-метрики продаж
type Metrics interface {
	IncSaleCreated()
	IncSeatConflict()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
