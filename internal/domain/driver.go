package domain

import "time"

// DriverStatus represents whether a driver can be assigned to trips
type DriverStatus string

const (
	DriverStatusActive   DriverStatus = "active"
	DriverStatusInactive DriverStatus = "inactive"
)

// IsValid reports whether s is one of the known statuses
func (s DriverStatus) IsValid() bool {
	return s == DriverStatusActive || s == DriverStatusInactive
}

// Driver of a company vehicle
type Driver struct {
	ID              int64
	Name            string
	Phone           string
	Email           *string
	License         string
	ExperienceYears int
	Status          DriverStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive returns true if the driver can be assigned to new sales
func (d *Driver) IsActive() bool {
	return d.Status == DriverStatusActive
}
