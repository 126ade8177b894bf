package models

import (
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// Request модели

// CreateDriverRequest запрос на регистрацию водителя
type CreateDriverRequest struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email,omitempty"`
	License         string  `json:"license"`
	ExperienceYears int     `json:"experienceYears"`
	Status          *string `json:"status,omitempty"` // По умолчанию active
}

// UpdateDriverRequest запрос на изменение водителя
// Все поля опциональны - обновляются только переданные значения
type UpdateDriverRequest struct {
	Name            *string `json:"name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	License         *string `json:"license,omitempty"`
	ExperienceYears *int    `json:"experienceYears,omitempty"`
	Status          *string `json:"status,omitempty"`
}

// IsEmpty true, если ни одно поле не передано
func (r *UpdateDriverRequest) IsEmpty() bool {
	return r.Name == nil && r.Phone == nil && r.Email == nil && r.License == nil &&
		r.ExperienceYears == nil && r.Status == nil
}

// Response модели

// DriverResponse ответ с данными водителя
type DriverResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           *string   `json:"email,omitempty"`
	License         string    `json:"license"`
	ExperienceYears int       `json:"experienceYears"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DriverListResponse ответ со списком водителей
type DriverListResponse struct {
	Drivers []DriverResponse `json:"drivers"`
}

// FromDomainDriver конвертирует domain модель в DTO
func FromDomainDriver(d *domain.Driver) *DriverResponse {
	if d == nil {
		return nil
	}

	return &DriverResponse{
		ID:              d.ID,
		Name:            d.Name,
		Phone:           d.Phone,
		Email:           d.Email,
		License:         d.License,
		ExperienceYears: d.ExperienceYears,
		Status:          string(d.Status),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// FromDomainDrivers конвертирует список водителей
func FromDomainDrivers(drivers []*domain.Driver) *DriverListResponse {
	resp := &DriverListResponse{Drivers: make([]DriverResponse, 0, len(drivers))}
	for _, d := range drivers {
		resp.Drivers = append(resp.Drivers, *FromDomainDriver(d))
	}
	return resp
}
