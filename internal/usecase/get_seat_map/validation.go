package get_seat_map

import (
	"fmt"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RouteID <= 0 {
		return fmt.Errorf("%w: routeId must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := time.Parse(domain.TimeFormat, req.Schedule); err != nil {
		return fmt.Errorf("%w: schedule must be HH:MM", ErrInvalidInput)
	}

	if req.Inventory == nil {
		return fmt.Errorf("%w: session inventory is required", ErrInvalidInput)
	}

	return nil
}
