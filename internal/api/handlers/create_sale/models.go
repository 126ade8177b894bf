package create_sale

import (
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
	createSale "github.com/m04kA/WJL-TicketService/internal/usecase/create_sale"
)

// CreateSaleRequest HTTP request model
type CreateSaleRequest struct {
	PassengerName  string   `json:"passengerName"`
	PassengerDNI   string   `json:"passengerDni"`
	PassengerPhone string   `json:"passengerPhone"`
	FromCity       string   `json:"fromCity"`
	ToCity         string   `json:"toCity"`
	DriverID       int64    `json:"driverId"`
	RouteID        int64    `json:"routeId"`
	SeatNumber     int      `json:"seatNumber"`
	TravelDate     string   `json:"travelDate"`   // "2024-06-01"
	ScheduleTime   string   `json:"scheduleTime"` // "07:00"
	Total          *float64 `json:"total,omitempty"`
	Status         *string  `json:"status,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSaleRequest) ToUseCaseRequest(inventory createSale.LocalInventory) (*createSale.Request, error) {
	travelDate, err := time.Parse(domain.DateFormat, r.TravelDate)
	if err != nil {
		return nil, err
	}

	req := &createSale.Request{
		PassengerName:  r.PassengerName,
		PassengerDNI:   r.PassengerDNI,
		PassengerPhone: r.PassengerPhone,
		FromCity:       r.FromCity,
		ToCity:         r.ToCity,
		DriverID:       r.DriverID,
		RouteID:        r.RouteID,
		SeatNumber:     r.SeatNumber,
		TravelDate:     travelDate,
		ScheduleTime:   r.ScheduleTime,
		Total:          r.Total,
		Inventory:      inventory,
	}
	if r.Status != nil {
		status := domain.SaleStatus(*r.Status)
		req.Status = &status
	}

	return req, nil
}
