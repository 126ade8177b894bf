package update_sale

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

var dniPattern = regexp.MustCompile(`^\d{8}$`)

// validateRequest проверяет только переданные поля
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if req.isEmpty() {
		return ErrNoFields
	}

	if req.PassengerName != nil {
		name := strings.TrimSpace(*req.PassengerName)
		if name == "" {
			return fmt.Errorf("%w: passengerName must not be empty", ErrInvalidInput)
		}
		if len(name) > domain.MaxNameLength {
			return fmt.Errorf("%w: passengerName is too long", ErrInvalidInput)
		}
	}

	if req.PassengerDNI != nil && !dniPattern.MatchString(*req.PassengerDNI) {
		return fmt.Errorf("%w: passengerDni must have exactly %d digits", ErrInvalidInput, domain.DNILength)
	}

	for field, value := range map[string]*string{
		"passengerPhone": req.PassengerPhone,
		"fromCity":       req.FromCity,
		"toCity":         req.ToCity,
	} {
		if value != nil && strings.TrimSpace(*value) == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidInput, field)
		}
	}

	if req.DriverID != nil && *req.DriverID <= 0 {
		return fmt.Errorf("%w: driverId must be positive", ErrInvalidInput)
	}
	if req.RouteID != nil && *req.RouteID <= 0 {
		return fmt.Errorf("%w: routeId must be positive", ErrInvalidInput)
	}

	if req.TravelDate != nil && req.TravelDate.IsZero() {
		return fmt.Errorf("%w: travelDate must not be empty", ErrInvalidInput)
	}
	if req.ScheduleTime != nil {
		if _, err := time.Parse(domain.TimeFormat, *req.ScheduleTime); err != nil {
			return fmt.Errorf("%w: scheduleTime must be HH:MM", ErrInvalidInput)
		}
	}

	if req.SeatNumber != nil {
		if *req.SeatNumber < 1 || *req.SeatNumber > domain.TotalSeats {
			return fmt.Errorf("%w: seatNumber must be between 1 and %d", ErrInvalidInput, domain.TotalSeats)
		}
		if *req.SeatNumber == domain.OperatorSeat {
			return ErrSeatUnavailable
		}
	}

	if req.Total != nil && *req.Total < 0 {
		return fmt.Errorf("%w: total must not be negative", ErrInvalidInput)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	return nil
}
