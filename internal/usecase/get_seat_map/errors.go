package get_seat_map

import (
	"fmt"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("get_seat_map: invalid input data: %w", domain.ErrValidation)

	// ErrRouteNotFound возвращается, когда маршрут не найден
	ErrRouteNotFound = fmt.Errorf("get_seat_map: route not found: %w", domain.ErrNotFound)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = fmt.Errorf("get_seat_map: internal error: %w", domain.ErrTransport)
)
