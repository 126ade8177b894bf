package create_sale

import (
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// Request модель запроса на продажу билета
type Request struct {
	PassengerName  string
	PassengerDNI   string
	PassengerPhone string
	FromCity       string
	ToCity         string
	DriverID       int64
	RouteID        int64
	SeatNumber     int
	TravelDate     time.Time // Дата поездки (без времени)
	ScheduleTime   string    // Время отправления "HH:MM"
	Total          *float64  // По умолчанию цена маршрута
	Status         *domain.SaleStatus

	// Инвентарь сессии; nil - обновлять нечего
	Inventory LocalInventory
}

// Response модель ответа с созданной продажей
type Response struct {
	Sale *domain.Sale
}
