package create_sale

import (
	"errors"
	"net/http"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/service/sales/models"
	"github.com/m04kA/WJL-TicketService/internal/session"
	createSale "github.com/m04kA/WJL-TicketService/internal/usecase/create_sale"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "formato de fecha de viaje inválido, se espera YYYY-MM-DD"
	msgInvalidData        = "datos de la venta inválidos"
	msgSeatUnavailable    = "el asiento 1 está reservado para el conductor"
	msgRouteNotFound      = "la ruta seleccionada no existe"
	msgSeatConflict       = "el asiento ya está ocupado para este viaje"
	msgStoreUnavailable   = "servicio no disponible, intente nuevamente"
)

type Handler struct {
	useCase CreateSaleUseCase
	logger  Logger
}

func NewHandler(useCase CreateSaleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sales
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sales - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var inventory createSale.LocalInventory
	if sess := session.FromContext(r.Context()); sess != nil {
		inventory = sess
	}

	useCaseReq, err := req.ToUseCaseRequest(inventory)
	if err != nil {
		h.logger.Warn("POST /sales - Invalid travel date %q: %v", req.TravelDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSale.ErrSeatUnavailable):
			h.logger.Warn("POST /sales - Operator seat requested: route_id=%d", req.RouteID)
			handlers.RespondBadRequest(w, msgSeatUnavailable)

		case errors.Is(err, createSale.ErrRouteNotFound):
			h.logger.Warn("POST /sales - Route not found: route_id=%d", req.RouteID)
			handlers.RespondBadRequest(w, msgRouteNotFound)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /sales - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, domain.ErrSeatConflict):
			h.logger.Warn("POST /sales - Seat conflict: route_id=%d, date=%s, schedule=%s, seat=%d",
				req.RouteID, req.TravelDate, req.ScheduleTime, req.SeatNumber)
			handlers.RespondConflict(w, msgSeatConflict)

		case errors.Is(err, domain.ErrTransport):
			h.logger.Error("POST /sales - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("POST /sales - Failed to create sale: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sales - Sale created successfully: sale_id=%s, seat=%d", result.Sale.ID, result.Sale.SeatNumber)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainSale(result.Sale))
}
