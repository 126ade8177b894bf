package create_sale

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

var dniPattern = regexp.MustCompile(`^\d{8}$`)

// validateRequest валидирует входные данные запроса.
// Место водителя отклоняется здесь, до проверки конфликта.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PassengerName) == "" {
		return fmt.Errorf("%w: passengerName is required", ErrInvalidInput)
	}
	if len(req.PassengerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: passengerName is too long", ErrInvalidInput)
	}

	if req.PassengerDNI == "" {
		return fmt.Errorf("%w: passengerDni is required", ErrInvalidInput)
	}
	if !dniPattern.MatchString(req.PassengerDNI) {
		return fmt.Errorf("%w: passengerDni must have exactly %d digits", ErrInvalidInput, domain.DNILength)
	}

	if strings.TrimSpace(req.PassengerPhone) == "" {
		return fmt.Errorf("%w: passengerPhone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.FromCity) == "" || strings.TrimSpace(req.ToCity) == "" {
		return fmt.Errorf("%w: fromCity and toCity are required", ErrInvalidInput)
	}

	if req.DriverID <= 0 {
		return fmt.Errorf("%w: driverId must be positive", ErrInvalidInput)
	}

	if req.RouteID <= 0 {
		return fmt.Errorf("%w: routeId must be positive", ErrInvalidInput)
	}

	if req.TravelDate.IsZero() {
		return fmt.Errorf("%w: travelDate is required", ErrInvalidInput)
	}

	if req.ScheduleTime == "" {
		return fmt.Errorf("%w: scheduleTime is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.TimeFormat, req.ScheduleTime); err != nil {
		return fmt.Errorf("%w: scheduleTime must be HH:MM", ErrInvalidInput)
	}

	if req.SeatNumber < 1 || req.SeatNumber > domain.TotalSeats {
		return fmt.Errorf("%w: seatNumber must be between 1 and %d", ErrInvalidInput, domain.TotalSeats)
	}
	if req.SeatNumber == domain.OperatorSeat {
		return ErrSeatUnavailable
	}

	if req.Total != nil && *req.Total < 0 {
		return fmt.Errorf("%w: total must not be negative", ErrInvalidInput)
	}

	if req.Status != nil && !req.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	return nil
}
