package update_sale

import (
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	updateSale "github.com/m04kA/WJL-TicketService/internal/usecase/update_sale"
)

// UpdateSaleRequest HTTP request model, все поля опциональны
type UpdateSaleRequest struct {
	PassengerName  *string  `json:"passengerName,omitempty"`
	PassengerDNI   *string  `json:"passengerDni,omitempty"`
	PassengerPhone *string  `json:"passengerPhone,omitempty"`
	FromCity       *string  `json:"fromCity,omitempty"`
	ToCity         *string  `json:"toCity,omitempty"`
	DriverID       *int64   `json:"driverId,omitempty"`
	RouteID        *int64   `json:"routeId,omitempty"`
	SeatNumber     *int     `json:"seatNumber,omitempty"`
	TravelDate     *string  `json:"travelDate,omitempty"`
	ScheduleTime   *string  `json:"scheduleTime,omitempty"`
	Total          *float64 `json:"total,omitempty"`
	Status         *string  `json:"status,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateSaleRequest) ToUseCaseRequest(id string, inventory updateSale.LocalInventory) (*updateSale.Request, error) {
	req := &updateSale.Request{
		ID:             id,
		PassengerName:  r.PassengerName,
		PassengerDNI:   r.PassengerDNI,
		PassengerPhone: r.PassengerPhone,
		FromCity:       r.FromCity,
		ToCity:         r.ToCity,
		DriverID:       r.DriverID,
		RouteID:        r.RouteID,
		SeatNumber:     r.SeatNumber,
		ScheduleTime:   r.ScheduleTime,
		Total:          r.Total,
		Inventory:      inventory,
	}

	if r.TravelDate != nil {
		travelDate, err := time.Parse(domain.DateFormat, *r.TravelDate)
		if err != nil {
			return nil, err
		}
		req.TravelDate = &travelDate
	}

	if r.Status != nil {
		status := domain.SaleStatus(*r.Status)
		req.Status = &status
	}

	return req, nil
}
