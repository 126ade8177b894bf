package delete_sale

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/session"
	deleteSale "github.com/m04kA/WJL-TicketService/internal/usecase/delete_sale"
)

const (
	msgInvalidSaleID    = "ID de venta inválido"
	msgNotFound         = "venta no encontrada"
	msgPastTripLocked   = "no se puede eliminar una venta confirmada de un viaje pasado"
	msgStoreUnavailable = "servicio no disponible, intente nuevamente"
)

type Handler struct {
	useCase DeleteSaleUseCase
	logger  Logger
}

func NewHandler(useCase DeleteSaleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sales/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	req := &deleteSale.Request{ID: id}
	if sess := session.FromContext(r.Context()); sess != nil {
		req.Inventory = sess
	}

	_, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("DELETE /sales/{id} - Invalid sale ID: %q", id)
			handlers.RespondBadRequest(w, msgInvalidSaleID)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("DELETE /sales/{id} - Sale not found: sale_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, domain.ErrPastTripLocked):
			h.logger.Warn("DELETE /sales/{id} - Past trip locked: sale_id=%s", id)
			handlers.RespondConflict(w, msgPastTripLocked)

		case errors.Is(err, domain.ErrTransport):
			h.logger.Error("DELETE /sales/{id} - Store unavailable: sale_id=%s, error=%v", id, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("DELETE /sales/{id} - Failed to delete sale: sale_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sales/{id} - Sale deleted successfully: sale_id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}
