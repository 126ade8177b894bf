package domain

import "time"

// DriverReportFilter filters for the passengers-by-driver report. All fields are optional.
type DriverReportFilter struct {
	TravelDate   *time.Time
	ScheduleTime *string
	DriverID     *int64
}

// DriverReportRow aggregates active sales of one driver
type DriverReportRow struct {
	DriverID       int64
	DriverName     string
	PassengerCount int
	Revenue        float64
	Routes         []string // distinct "From → To" pairs
}
