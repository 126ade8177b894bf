package auth

import (
	"errors"
	"fmt"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrUserInactive возвращается при входе отключённого пользователя
	ErrUserInactive = errors.New("auth: user is inactive")

	// ErrInvalidToken возвращается при отсутствующем, поддельном или просроченном токене
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrSessionExpired возвращается, когда сессия истекла по неактивности
	ErrSessionExpired = errors.New("auth: session expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("auth: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("auth: internal error: %w", domain.ErrTransport)
)
