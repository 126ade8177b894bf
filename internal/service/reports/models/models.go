package models

import (
	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// DriverReportRequest фильтры отчёта по водителям
type DriverReportRequest struct {
	Date     *string
	Schedule *string
	DriverID *int64
}

// DriverRow строка отчёта по одному водителю
type DriverRow struct {
	DriverID       int64    `json:"driverId"`
	DriverName     string   `json:"driverName"`
	PassengerCount int      `json:"passengerCount"`
	Revenue        float64  `json:"revenue"`
	Routes         []string `json:"routes"`
}

// DriverReportResponse отчёт пассажиров по водителям
type DriverReportResponse struct {
	Drivers         []DriverRow `json:"drivers"`
	TotalPassengers int         `json:"totalPassengers"`
	TotalRevenue    float64     `json:"totalRevenue"`
}

// ManifestRequest параметры посадочной ведомости
type ManifestRequest struct {
	Date     string
	RouteID  int64
	Schedule string
}

// FromDomainDriverReport конвертирует строки отчёта
func FromDomainDriverReport(rows []*domain.DriverReportRow) *DriverReportResponse {
	resp := &DriverReportResponse{Drivers: make([]DriverRow, 0, len(rows))}
	for _, row := range rows {
		routes := row.Routes
		if routes == nil {
			routes = []string{}
		}
		resp.Drivers = append(resp.Drivers, DriverRow{
			DriverID:       row.DriverID,
			DriverName:     row.DriverName,
			PassengerCount: row.PassengerCount,
			Revenue:        row.Revenue,
			Routes:         routes,
		})
		resp.TotalPassengers += row.PassengerCount
		resp.TotalRevenue += row.Revenue
	}
	return resp
}
