package update_sale

import (
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// Request модель запроса на изменение продажи. nil - поле не меняется.
type Request struct {
	ID string

	PassengerName  *string
	PassengerDNI   *string
	PassengerPhone *string
	FromCity       *string
	ToCity         *string
	DriverID       *int64
	RouteID        *int64
	SeatNumber     *int
	TravelDate     *time.Time
	ScheduleTime   *string
	Total          *float64
	Status         *domain.SaleStatus

	// Инвентарь сессии; nil - обновлять нечего
	Inventory LocalInventory
}

// Response модель ответа с обновлённой продажей
type Response struct {
	Sale *domain.Sale
}

func (r *Request) isEmpty() bool {
	return r.PassengerName == nil && r.PassengerDNI == nil && r.PassengerPhone == nil &&
		r.FromCity == nil && r.ToCity == nil && r.DriverID == nil && r.RouteID == nil &&
		r.SeatNumber == nil && r.TravelDate == nil && r.ScheduleTime == nil &&
		r.Total == nil && r.Status == nil
}
