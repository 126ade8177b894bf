package session

import "errors"

var (
	// ErrSessionNotFound сессия не существует или уже удалена
	ErrSessionNotFound = errors.New("session: not found")

	// ErrSessionExpired сессия простаивала дольше таймаута
	ErrSessionExpired = errors.New("session: expired")
)
