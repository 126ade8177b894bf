package reports

import (
	"fmt"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных параметрах отчёта
	ErrInvalidInput = fmt.Errorf("reports: invalid input data: %w", domain.ErrValidation)

	// ErrRouteNotFound возвращается, когда маршрут манифеста не найден
	ErrRouteNotFound = fmt.Errorf("reports: route not found: %w", domain.ErrNotFound)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("reports: internal error: %w", domain.ErrTransport)
)
