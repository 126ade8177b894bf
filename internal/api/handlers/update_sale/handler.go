package update_sale

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/service/sales/models"
	"github.com/m04kA/WJL-TicketService/internal/session"
	updateSale "github.com/m04kA/WJL-TicketService/internal/usecase/update_sale"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha de viaje inválido, se espera YYYY-MM-DD"
	msgNoFields           = "no hay campos para actualizar"
	msgInvalidData        = "datos de la venta inválidos"
	msgSeatUnavailable    = "el asiento 1 está reservado para el conductor"
	msgRouteNotFound      = "la ruta seleccionada no existe"
	msgNotFound           = "venta no encontrada"
	msgSeatConflict       = "el asiento ya está ocupado para este viaje"
	msgStoreUnavailable   = "servicio no disponible, intente nuevamente"
)

type Handler struct {
	useCase UpdateSaleUseCase
	logger  Logger
}

func NewHandler(useCase UpdateSaleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/sales/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateSaleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sales/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var inventory updateSale.LocalInventory
	if sess := session.FromContext(r.Context()); sess != nil {
		inventory = sess
	}

	useCaseReq, err := req.ToUseCaseRequest(id, inventory)
	if err != nil {
		h.logger.Warn("PUT /sales/{id} - Invalid travel date: sale_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateSale.ErrNoFields):
			h.logger.Warn("PUT /sales/{id} - No fields to update: sale_id=%s", id)
			handlers.RespondBadRequest(w, msgNoFields)

		case errors.Is(err, updateSale.ErrSeatUnavailable):
			h.logger.Warn("PUT /sales/{id} - Operator seat requested: sale_id=%s", id)
			handlers.RespondBadRequest(w, msgSeatUnavailable)

		case errors.Is(err, updateSale.ErrRouteNotFound):
			h.logger.Warn("PUT /sales/{id} - Route not found: sale_id=%s, route_id=%v", id, req.RouteID)
			handlers.RespondBadRequest(w, msgRouteNotFound)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PUT /sales/{id} - Invalid data: sale_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("PUT /sales/{id} - Sale not found: sale_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrSeatConflict):
			h.logger.Warn("PUT /sales/{id} - Seat conflict: sale_id=%s", id)
			handlers.RespondConflict(w, msgSeatConflict)

		case errors.Is(err, domain.ErrTransport):
			h.logger.Error("PUT /sales/{id} - Store unavailable: sale_id=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("PUT /sales/{id} - Failed to update sale: sale_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sales/{id} - Sale updated successfully: sale_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSale(result.Sale))
}
