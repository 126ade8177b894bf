package sale

import "errors"

var (
	// ErrSaleNotFound возвращается, когда продажа не найдена
	ErrSaleNotFound = errors.New("sale.repository: sale not found")

	// ErrSeatTaken возвращается, когда место уже занято активной продажей
	// (нарушение частичного уникального индекса sales_active_seat_uidx)
	ErrSeatTaken = errors.New("sale.repository: seat already taken")

	// ErrDuplicateID возвращается при коллизии идентификатора продажи
	ErrDuplicateID = errors.New("sale.repository: duplicate sale id")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("sale.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("sale.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("sale.repository: failed to scan row")
)
