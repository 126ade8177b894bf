package sales

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/service/sales/models"
)

const (
	msgInvalidFilters   = "filtros inválidos"
	msgNotFound         = "venta no encontrada"
	msgStoreUnavailable = "servicio no disponible, intente nuevamente"
)

type Handler struct {
	service SaleService
	logger  Logger
}

func NewHandler(service SaleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/sales
// Query params: date, routeId, schedule, status, driverName, driverId, passengerDni (все опциональны)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	routeID, err := handlers.QueryInt64(r, "routeId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFilters)
		return
	}
	driverID, err := handlers.QueryInt64(r, "driverId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFilters)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListSalesRequest{
		Date:         handlers.QueryString(r, "date"),
		RouteID:      routeID,
		Schedule:     handlers.QueryString(r, "schedule"),
		Status:       handlers.QueryString(r, "status"),
		DriverName:   handlers.QueryString(r, "driverName"),
		DriverID:     driverID,
		PassengerDNI: handlers.QueryString(r, "passengerDni"),
	})
	if err != nil {
		h.respondError(w, "GET /sales", err)
		return
	}

	h.logger.Info("GET /sales - Sales retrieved: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/sales/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /sales/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.logger.Warn("%s - Invalid filters: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidFilters)

	case errors.Is(err, domain.ErrNotFound):
		h.logger.Warn("%s - Sale not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, domain.ErrTransport):
		h.logger.Error("%s - Store unavailable: %v", op, err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

	default:
		h.logger.Error("%s - Failed: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
