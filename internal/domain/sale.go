package domain

import (
	"strconv"
	"time"
)

// SaleStatus represents the status of a ticket sale
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusPaid      SaleStatus = "paid"
	SaleStatusConfirmed SaleStatus = "confirmed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// Label returns the status name shown to staff and passengers
func (s SaleStatus) Label() string {
	switch s {
	case SaleStatusPending:
		return "Pendiente"
	case SaleStatusPaid:
		return "Pagado"
	case SaleStatusConfirmed:
		return "Confirmado"
	case SaleStatusCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}

// IsValid reports whether s is one of the known statuses
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusPending, SaleStatusPaid, SaleStatusConfirmed, SaleStatusCancelled:
		return true
	}
	return false
}

// Sale is a passenger ticket: the occupant of one seat on one trip
type Sale struct {
	ID             string
	PassengerName  string
	PassengerDNI   string
	PassengerPhone string
	FromCity       string
	ToCity         string
	DriverID       int64
	DriverName     string
	RouteID        int64
	SeatNumber     int
	Price          float64
	Total          float64
	TravelDate     time.Time
	ScheduleTime   string
	Status         SaleStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the sale holds its seat
func (s *Sale) IsActive() bool {
	return s.Status != SaleStatusCancelled
}

// TripKey returns the key of the trip this sale belongs to
func (s *Sale) TripKey() string {
	return TripKey(s.TravelDate.Format(DateFormat), strconv.FormatInt(s.RouteID, 10), s.ScheduleTime)
}

// IsPastTripLocked reports whether the sale belongs to a trip that already
// departed (travel date strictly before today) and is confirmed
func (s *Sale) IsPastTripLocked(now time.Time) bool {
	if s.Status != SaleStatusConfirmed {
		return false
	}
	return DateOnly(s.TravelDate).Before(DateOnly(now))
}

// SeatLabel returns the seat number padded to two digits
func (s *Sale) SeatLabel() string {
	return SeatLabel(s.SeatNumber)
}

// SalesFilter filters for listing sales. All fields are optional.
type SalesFilter struct {
	TravelDate   *time.Time
	RouteID      *int64
	ScheduleTime *string
	Status       *SaleStatus
	DriverName   *string // case-insensitive substring
	DriverID     *int64
	PassengerDNI *string
	ActiveOnly   bool // exclude cancelled sales
}

// DateOnly returns the calendar date of t (in t's own location) as UTC midnight,
// so dates read from the store and wall-clock "today" compare by calendar day
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
