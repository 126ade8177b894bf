package drivers

import (
	"fmt"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

var (
	// ErrDriverNotFound возвращается, когда водитель не найден
	ErrDriverNotFound = fmt.Errorf("drivers: driver not found: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("drivers: invalid input data: %w", domain.ErrValidation)

	// ErrDuplicateLicense возвращается, когда лицензия уже зарегистрирована
	ErrDuplicateLicense = fmt.Errorf("drivers: license already registered: %w", domain.ErrDuplicate)

	// ErrDriverInUse возвращается при удалении водителя, у которого есть продажи
	ErrDriverInUse = fmt.Errorf("drivers: driver has sales: %w", domain.ErrInUse)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("drivers: internal error: %w", domain.ErrTransport)
)
