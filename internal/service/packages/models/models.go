package models

import (
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// Request модели

// CreatePackageRequest запрос на регистрацию посылки
type CreatePackageRequest struct {
	SenderName     string   `json:"senderName"`
	SenderDNI      string   `json:"senderDni"`
	SenderPhone    *string  `json:"senderPhone,omitempty"`
	RecipientName  string   `json:"recipientName"`
	RecipientDNI   string   `json:"recipientDni"`
	RecipientPhone *string  `json:"recipientPhone,omitempty"`
	FromCity       string   `json:"fromCity"`
	ToCity         string   `json:"toCity"`
	RouteID        *int64   `json:"routeId,omitempty"`
	Description    string   `json:"description"`
	Weight         float64  `json:"weight"`
	DeclaredValue  *float64 `json:"declaredValue,omitempty"` // По умолчанию 0
	ShippingCost   *float64 `json:"shippingCost,omitempty"`  // По умолчанию total
	Total          float64  `json:"total"`
	TravelDate     *string  `json:"travelDate,omitempty"` // YYYY-MM-DD, по умолчанию сегодня
	Status         *string  `json:"status,omitempty"`     // По умолчанию pending
}

// UpdatePackageRequest частичное обновление посылки
type UpdatePackageRequest struct {
	SenderName     *string  `json:"senderName,omitempty"`
	SenderDNI      *string  `json:"senderDni,omitempty"`
	SenderPhone    *string  `json:"senderPhone,omitempty"`
	RecipientName  *string  `json:"recipientName,omitempty"`
	RecipientDNI   *string  `json:"recipientDni,omitempty"`
	RecipientPhone *string  `json:"recipientPhone,omitempty"`
	FromCity       *string  `json:"fromCity,omitempty"`
	ToCity         *string  `json:"toCity,omitempty"`
	RouteID        *int64   `json:"routeId,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	DeclaredValue  *float64 `json:"declaredValue,omitempty"`
	ShippingCost   *float64 `json:"shippingCost,omitempty"`
	Total          *float64 `json:"total,omitempty"`
	TravelDate     *string  `json:"travelDate,omitempty"`
	Status         *string  `json:"status,omitempty"`
}

// IsEmpty true, если ни одно поле не передано
func (r *UpdatePackageRequest) IsEmpty() bool {
	return r.SenderName == nil && r.SenderDNI == nil && r.SenderPhone == nil &&
		r.RecipientName == nil && r.RecipientDNI == nil && r.RecipientPhone == nil &&
		r.FromCity == nil && r.ToCity == nil && r.RouteID == nil && r.Description == nil &&
		r.Weight == nil && r.DeclaredValue == nil && r.ShippingCost == nil && r.Total == nil &&
		r.TravelDate == nil && r.Status == nil
}

// UpdateStatusRequest смена статуса и/или кода отслеживания
type UpdateStatusRequest struct {
	Status       *string `json:"status,omitempty"`
	TrackingCode *string `json:"trackingCode,omitempty"`
}

// ListPackagesRequest фильтры списка посылок
type ListPackagesRequest struct {
	Status       *string
	TrackingCode *string
	SenderDNI    *string
	RecipientDNI *string
}

// Response модели

// PackageResponse ответ с данными посылки
type PackageResponse struct {
	ID             string    `json:"id"`
	TrackingCode   string    `json:"trackingCode"`
	SenderName     string    `json:"senderName"`
	SenderDNI      string    `json:"senderDni"`
	SenderPhone    *string   `json:"senderPhone,omitempty"`
	RecipientName  string    `json:"recipientName"`
	RecipientDNI   string    `json:"recipientDni"`
	RecipientPhone *string   `json:"recipientPhone,omitempty"`
	FromCity       string    `json:"fromCity"`
	ToCity         string    `json:"toCity"`
	RouteID        *int64    `json:"routeId,omitempty"`
	Description    string    `json:"description"`
	Weight         float64   `json:"weight"`
	DeclaredValue  float64   `json:"declaredValue"`
	ShippingCost   float64   `json:"shippingCost"`
	Total          float64   `json:"total"`
	TravelDate     string    `json:"travelDate"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"statusLabel"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PackageListResponse ответ со списком посылок
type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
}

// FromDomainParcel конвертирует domain модель в DTO
func FromDomainParcel(p *domain.Parcel) *PackageResponse {
	if p == nil {
		return nil
	}

	return &PackageResponse{
		ID:             p.ID,
		TrackingCode:   p.TrackingCode,
		SenderName:     p.SenderName,
		SenderDNI:      p.SenderDNI,
		SenderPhone:    p.SenderPhone,
		RecipientName:  p.RecipientName,
		RecipientDNI:   p.RecipientDNI,
		RecipientPhone: p.RecipientPhone,
		FromCity:       p.FromCity,
		ToCity:         p.ToCity,
		RouteID:        p.RouteID,
		Description:    p.Description,
		Weight:         p.Weight,
		DeclaredValue:  p.DeclaredValue,
		ShippingCost:   p.ShippingCost,
		Total:          p.Total,
		TravelDate:     p.TravelDate.Format(domain.DateFormat),
		Status:         string(p.Status),
		StatusLabel:    p.Status.Label(),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// FromDomainParcels конвертирует список посылок
func FromDomainParcels(parcels []*domain.Parcel) *PackageListResponse {
	resp := &PackageListResponse{Packages: make([]PackageResponse, 0, len(parcels))}
	for _, p := range parcels {
		resp.Packages = append(resp.Packages, *FromDomainParcel(p))
	}
	return resp
}
