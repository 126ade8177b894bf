package create_sale

import (
	"fmt"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_sale: invalid input data: %w", domain.ErrValidation)

	// ErrSeatUnavailable возвращается при попытке продать место водителя
	ErrSeatUnavailable = fmt.Errorf("create_sale: seat is not available for sale: %w", domain.ErrValidation)

	// ErrRouteNotFound возвращается, когда маршрут продажи не существует
	ErrRouteNotFound = fmt.Errorf("create_sale: route not found: %w", domain.ErrValidation)

	// ErrSeatConflict возвращается, когда место уже занято активной продажей
	ErrSeatConflict = fmt.Errorf("create_sale: seat already sold for this trip: %w", domain.ErrSeatConflict)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = fmt.Errorf("create_sale: internal error: %w", domain.ErrTransport)
)
