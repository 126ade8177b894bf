package delete_sale

import "github.com/m04kA/WJL-TicketService/internal/domain"

// Request модель запроса на удаление продажи
type Request struct {
	ID string

	// Инвентарь сессии; nil - обновлять нечего
	Inventory LocalInventory
}

// Response удалённая продажа
type Response struct {
	Sale *domain.Sale
}
