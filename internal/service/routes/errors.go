package routes

import (
	"fmt"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

var (
	// ErrRouteNotFound возвращается, когда маршрут не найден
	ErrRouteNotFound = fmt.Errorf("routes: route not found: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("routes: invalid input data: %w", domain.ErrValidation)

	// ErrDuplicateRoute возвращается при повторе (origin, destination, schedule)
	ErrDuplicateRoute = fmt.Errorf("routes: route already exists: %w", domain.ErrDuplicate)

	// ErrRouteInUse возвращается при удалении маршрута с продажами или посылками
	ErrRouteInUse = fmt.Errorf("routes: route has sales or packages: %w", domain.ErrInUse)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("routes: internal error: %w", domain.ErrTransport)
)
