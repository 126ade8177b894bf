package packages

import (
	"fmt"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

var (
	// ErrPackageNotFound возвращается, когда посылка не найдена
	ErrPackageNotFound = fmt.Errorf("packages: package not found: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("packages: invalid input data: %w", domain.ErrValidation)

	// ErrDuplicateTrackingCode возвращается, когда код отслеживания уже занят
	ErrDuplicateTrackingCode = fmt.Errorf("packages: tracking code already exists: %w", domain.ErrDuplicate)

	// ErrDuplicatePackageID возвращается, когда все попытки подобрать ID заняты
	ErrDuplicatePackageID = fmt.Errorf("packages: package id already exists: %w", domain.ErrDuplicate)

	// ErrPackageInTransit возвращается при удалении посылки в пути
	ErrPackageInTransit = fmt.Errorf("packages: package is in transit: %w", domain.ErrInUse)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("packages: internal error: %w", domain.ErrTransport)
)
