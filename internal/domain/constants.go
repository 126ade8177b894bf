package domain

import "time"

// Vehicle layout. Seat 1 is the operator (conductor) seat and is never sold.
const (
	TotalSeats     = 16
	PassengerSeats = TotalSeats - 1
	OperatorSeat   = 1
)

// Session defaults
const (
	DefaultSessionTimeout = 10 * time.Minute
	DefaultTimezone       = "America/Lima"
)

// Business validation constants
const (
	DNILength          = 8
	MaxNameLength      = 150
	MaxDescriptionLen  = 500
	MaxTrackingRetries = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultDriverName is stored when a sale references a driver that no longer exists
const DefaultDriverName = "Conductor no encontrado"

// InactiveStatuses sale statuses that release the seat
var InactiveStatuses = []SaleStatus{
	SaleStatusCancelled,
}

// ActiveStatuses sale statuses that hold the seat
var ActiveStatuses = []SaleStatus{
	SaleStatusPending,
	SaleStatusPaid,
	SaleStatusConfirmed,
}
