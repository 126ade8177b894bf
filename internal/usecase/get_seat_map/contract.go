package get_seat_map

import (
	"context"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// SaleRepository интерфейс репозитория продаж
type SaleRepository interface {
	// List получает продажи по фильтру; для инвентаря - только активные
	List(ctx context.Context, filter domain.SalesFilter) ([]*domain.Sale, error)
}

// RouteRepository интерфейс репозитория маршрутов
type RouteRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
}

// SessionInventory инвентарь мест сессии
type SessionInventory interface {
	Loaded() bool
	ReplaceInventory(inv domain.SeatInventory)
	ReplaceDate(date string, inv domain.SeatInventory)
	SeatMap(date, routeID, schedule string) domain.TripSeatMap
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
