package driver

import "errors"

var (
	// ErrDriverNotFound возвращается, когда водитель не найден
	ErrDriverNotFound = errors.New("driver.repository: driver not found")

	// ErrDuplicateLicense возвращается, когда лицензия уже зарегистрирована
	ErrDuplicateLicense = errors.New("driver.repository: license already registered")

	// ErrDriverInUse возвращается, когда на водителя ссылаются продажи или посылки
	ErrDriverInUse = errors.New("driver.repository: driver is referenced")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("driver.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("driver.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("driver.repository: failed to scan row")
)
