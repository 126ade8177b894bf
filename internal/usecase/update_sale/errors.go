package update_sale

import (
	"fmt"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("update_sale: invalid input data: %w", domain.ErrValidation)

	// ErrNoFields возвращается, когда в запросе нет ни одного поля для обновления
	ErrNoFields = fmt.Errorf("update_sale: no fields to update: %w", domain.ErrValidation)

	// ErrSeatUnavailable возвращается при попытке пересадить пассажира на место водителя
	ErrSeatUnavailable = fmt.Errorf("update_sale: seat is not available for sale: %w", domain.ErrValidation)

	// ErrRouteNotFound возвращается, когда новый маршрут не существует
	ErrRouteNotFound = fmt.Errorf("update_sale: route not found: %w", domain.ErrValidation)

	// ErrSaleNotFound возвращается, когда продажа не найдена
	ErrSaleNotFound = fmt.Errorf("update_sale: sale not found: %w", domain.ErrNotFound)

	// ErrSeatConflict возвращается, когда новое место уже занято другой активной продажей
	ErrSeatConflict = fmt.Errorf("update_sale: seat already sold for this trip: %w", domain.ErrSeatConflict)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = fmt.Errorf("update_sale: internal error: %w", domain.ErrTransport)
)
