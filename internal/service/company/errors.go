package company

import (
	"fmt"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("company: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("company: internal error: %w", domain.ErrTransport)
)
