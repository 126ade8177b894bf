package models

import (
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// CreateRouteRequest запрос на создание маршрута
type CreateRouteRequest struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Price       float64  `json:"price"`
	Schedule    string   `json:"schedule"`
	ArrivalTime *string  `json:"arrivalTime,omitempty"`
	DistanceKm  *float64 `json:"distanceKm,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// UpdateRouteRequest запрос на изменение маршрута, все поля опциональны
type UpdateRouteRequest struct {
	Origin      *string  `json:"origin,omitempty"`
	Destination *string  `json:"destination,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Schedule    *string  `json:"schedule,omitempty"`
	ArrivalTime *string  `json:"arrivalTime,omitempty"`
	DistanceKm  *float64 `json:"distanceKm,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// IsEmpty true, если ни одно поле не передано
func (r *UpdateRouteRequest) IsEmpty() bool {
	return r.Origin == nil && r.Destination == nil && r.Price == nil && r.Schedule == nil &&
		r.ArrivalTime == nil && r.DistanceKm == nil && r.Status == nil
}

// RouteResponse ответ с данными маршрута
type RouteResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Price       float64   `json:"price"`
	Schedule    string    `json:"schedule"`
	ArrivalTime *string   `json:"arrivalTime,omitempty"`
	DistanceKm  *float64  `json:"distanceKm,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RouteListResponse ответ со списком маршрутов
type RouteListResponse struct {
	Routes []RouteResponse `json:"routes"`
}

// FromDomainRoute конвертирует domain модель в DTO
func FromDomainRoute(r *domain.Route) *RouteResponse {
	if r == nil {
		return nil
	}

	return &RouteResponse{
		ID:          r.ID,
		Name:        r.Name(),
		Origin:      r.Origin,
		Destination: r.Destination,
		Price:       r.Price,
		Schedule:    r.Schedule,
		ArrivalTime: r.ArrivalTime,
		DistanceKm:  r.DistanceKm,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainRoutes конвертирует список маршрутов
func FromDomainRoutes(routes []*domain.Route) *RouteListResponse {
	resp := &RouteListResponse{Routes: make([]RouteResponse, 0, len(routes))}
	for _, r := range routes {
		resp.Routes = append(resp.Routes, *FromDomainRoute(r))
	}
	return resp
}
