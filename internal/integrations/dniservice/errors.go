package dniservice

import "errors"

var (
	// ErrPersonNotFound возвращается, когда сервис не знает такого DNI
	ErrPersonNotFound = errors.New("dniservice client: person not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("dniservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("dniservice client: invalid response")

	// ErrUnavailable возвращается, когда сервис недоступен
	ErrUnavailable = errors.New("dniservice client: service unavailable")
)
