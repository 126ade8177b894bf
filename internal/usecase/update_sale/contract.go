package update_sale

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// SaleRepository интерфейс репозитория продаж
type SaleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	IsSeatTaken(ctx context.Context, routeID int64, travelDate, scheduleTime string, seat int, excludeID string) (bool, error)
	Update(ctx context.Context, sale *domain.Sale) error
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

// LocalInventory инвентарь мест сессии
type LocalInventory interface {
	Book(sale *domain.Sale)
	Release(sale *domain.Sale)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	SaleUpdated(ctx context.Context, sale *domain.Sale)
}

// Metrics бизнес-метрики продаж
type Metrics interface {
	IncSeatConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
