package get_seat_map

import (
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// Request модель запроса схемы мест рейса
type Request struct {
	Date      time.Time // Дата поездки (без времени)
	RouteID   int64
	Schedule  string // Время отправления "HH:MM"
	Inventory SessionInventory
}

// Response схема мест рейса
type Response struct {
	Route   *domain.Route
	SeatMap domain.TripSeatMap
}

// ReloadRequest модель запроса полной перезагрузки инвентаря
type ReloadRequest struct {
	Date      *time.Time // Только продажи на эту дату; nil - все активные
	Inventory SessionInventory
}

// ReloadResponse результат перезагрузки
type ReloadResponse struct {
	Sales int // Количество загруженных активных продаж
	Trips int // Количество рейсов с занятыми местами
}
