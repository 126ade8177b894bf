package delete_sale

import (
	"fmt"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("delete_sale: invalid input data: %w", domain.ErrValidation)

	// ErrSaleNotFound возвращается, когда продажа не найдена
	ErrSaleNotFound = fmt.Errorf("delete_sale: sale not found: %w", domain.ErrNotFound)

	// ErrPastTripLocked возвращается при удалении подтверждённой продажи прошедшего рейса
	ErrPastTripLocked = fmt.Errorf("delete_sale: confirmed sale of a past trip cannot be deleted: %w", domain.ErrPastTripLocked)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = fmt.Errorf("delete_sale: internal error: %w", domain.ErrTransport)
)
