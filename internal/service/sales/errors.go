package sales

import (
	"fmt"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

var (
	// ErrSaleNotFound возвращается, когда продажа не найдена
	ErrSaleNotFound = fmt.Errorf("sales: sale not found: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных фильтрах
	ErrInvalidInput = fmt.Errorf("sales: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("sales: internal error: %w", domain.ErrTransport)
)
