package routes

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) (*domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	List(ctx context.Context, status *domain.RouteStatus) ([]*domain.Route, error)
	Update(ctx context.Context, route *domain.Route) error
	Delete(ctx context.Context, id int64) error
}

// UsageCounter считает записи, ссылающиеся на маршрут (продажи, посылки)
type UsageCounter interface {
	CountByRoute(ctx context.Context, routeID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
