package models

import (
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// ListSalesRequest фильтры списка продаж, все опциональны
type ListSalesRequest struct {
	Date         *string // YYYY-MM-DD
	RouteID      *int64
	Schedule     *string
	Status       *string
	DriverName   *string
	DriverID     *int64
	PassengerDNI *string
}

// SaleResponse ответ с данными продажи
type SaleResponse struct {
	ID             string    `json:"id"`
	PassengerName  string    `json:"passengerName"`
	PassengerDNI   string    `json:"passengerDni"`
	PassengerPhone string    `json:"passengerPhone"`
	FromCity       string    `json:"fromCity"`
	ToCity         string    `json:"toCity"`
	DriverID       int64     `json:"driverId"`
	DriverName     string    `json:"driverName"`
	RouteID        int64     `json:"routeId"`
	SeatNumber     int       `json:"seatNumber"`
	SeatLabel      string    `json:"seatLabel"`
	Price          float64   `json:"price"`
	Total          float64   `json:"total"`
	TravelDate     string    `json:"travelDate"`
	ScheduleTime   string    `json:"scheduleTime"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"statusLabel"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// SaleListResponse ответ со списком продаж
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Total int            `json:"total"`
}

// FromDomainSale конвертирует domain модель в DTO
func FromDomainSale(s *domain.Sale) *SaleResponse {
	if s == nil {
		return nil
	}

	return &SaleResponse{
		ID:             s.ID,
		PassengerName:  s.PassengerName,
		PassengerDNI:   s.PassengerDNI,
		PassengerPhone: s.PassengerPhone,
		FromCity:       s.FromCity,
		ToCity:         s.ToCity,
		DriverID:       s.DriverID,
		DriverName:     s.DriverName,
		RouteID:        s.RouteID,
		SeatNumber:     s.SeatNumber,
		SeatLabel:      s.SeatLabel(),
		Price:          s.Price,
		Total:          s.Total,
		TravelDate:     s.TravelDate.Format(domain.DateFormat),
		ScheduleTime:   s.ScheduleTime,
		Status:         string(s.Status),
		StatusLabel:    s.Status.Label(),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// FromDomainSales конвертирует список продаж
func FromDomainSales(sales []*domain.Sale) *SaleListResponse {
	resp := &SaleListResponse{Sales: make([]SaleResponse, 0, len(sales)), Total: len(sales)}
	for _, s := range sales {
		resp.Sales = append(resp.Sales, *FromDomainSale(s))
	}
	return resp
}
