package parcel

import "errors"

var (
	// ErrParcelNotFound возвращается, когда посылка не найдена
	ErrParcelNotFound = errors.New("parcel.repository: parcel not found")

	// ErrDuplicateTrackingCode возвращается при коллизии кода отслеживания
	ErrDuplicateTrackingCode = errors.New("parcel.repository: tracking code already exists")

	// ErrDuplicateID возвращается при коллизии первичного ключа
	ErrDuplicateID = errors.New("parcel.repository: package id already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("parcel.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("parcel.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("parcel.repository: failed to scan row")
)
