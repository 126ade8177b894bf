package domain

import "time"

// ParcelStatus represents the shipping state of a parcel
type ParcelStatus string

const (
	ParcelStatusPending   ParcelStatus = "pending"
	ParcelStatusPaid      ParcelStatus = "paid"
	ParcelStatusInTransit ParcelStatus = "in_transit"
	ParcelStatusDelivered ParcelStatus = "delivered"
)

// ParcelStatuses every status a parcel may be set to
var ParcelStatuses = []ParcelStatus{
	ParcelStatusPending,
	ParcelStatusPaid,
	ParcelStatusInTransit,
	ParcelStatusDelivered,
}

// IsValid reports whether s is one of the known statuses
func (s ParcelStatus) IsValid() bool {
	for _, known := range ParcelStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the status name shown to customers
func (s ParcelStatus) Label() string {
	switch s {
	case ParcelStatusPending:
		return "Pendiente"
	case ParcelStatusPaid:
		return "Pagado"
	case ParcelStatusInTransit:
		return "En Tránsito"
	case ParcelStatusDelivered:
		return "Entregado"
	default:
		return string(s)
	}
}

// Parcel a package shipped on a company bus
type Parcel struct {
	ID             string
	TrackingCode   string
	SenderName     string
	SenderDNI      string
	SenderPhone    *string
	RecipientName  string
	RecipientDNI   string
	RecipientPhone *string
	FromCity       string
	ToCity         string
	RouteID        *int64
	Description    string
	Weight         float64
	DeclaredValue  float64
	ShippingCost   float64
	Total          float64
	TravelDate     time.Time
	Status         ParcelStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanBeDeleted returns false while the parcel is on the road
func (p *Parcel) CanBeDeleted() bool {
	return p.Status != ParcelStatusInTransit
}

// ParcelsFilter filters for listing parcels. All fields are optional.
type ParcelsFilter struct {
	Status       *ParcelStatus
	TrackingCode *string
	SenderDNI    *string
	RecipientDNI *string
}
