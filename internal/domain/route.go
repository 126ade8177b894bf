package domain

import "time"

// RouteStatus represents whether tickets can be sold on a route
type RouteStatus string

const (
	RouteStatusActive   RouteStatus = "active"
	RouteStatusInactive RouteStatus = "inactive"
)

// Route an origin/destination pair served at a schedule
type Route struct {
	ID          int64
	Origin      string
	Destination string
	Price       float64
	Schedule    string // departure time label, e.g. "07:00"
	ArrivalTime *string
	DistanceKm  *float64
	Status      RouteStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Name returns "Origin → Destination"
func (r *Route) Name() string {
	return r.Origin + " → " + r.Destination
}

// IsActive returns true if tickets can be sold on the route
func (r *Route) IsActive() bool {
	return r.Status == RouteStatusActive
}
