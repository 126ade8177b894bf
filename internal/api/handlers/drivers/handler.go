package drivers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/service/drivers/models"
)

const (
	msgInvalidDriverID    = "ID de conductor inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "datos del conductor inválidos"
	msgNotFound           = "conductor no encontrado"
	msgDuplicateLicense   = "la licencia ya está registrada"
	msgDriverInUse        = "el conductor tiene ventas registradas"
	msgStoreUnavailable   = "servicio no disponible, intente nuevamente"
)

type Handler struct {
	service DriverService
	logger  Logger
}

func NewHandler(service DriverService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/drivers
// Query params: status (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), handlers.QueryString(r, "status"))
	if err != nil {
		h.respondError(w, "GET /drivers", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/drivers/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.driverID(w, r, "GET /drivers/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /drivers/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/drivers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDriverRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drivers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /drivers", err)
		return
	}

	h.logger.Info("POST /drivers - Driver created successfully: driver_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/drivers/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.driverID(w, r, "PUT /drivers/{id}")
	if !ok {
		return
	}

	var req models.UpdateDriverRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /drivers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /drivers/{id}", err)
		return
	}

	h.logger.Info("PUT /drivers/{id} - Driver updated successfully: driver_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/drivers/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.driverID(w, r, "DELETE /drivers/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /drivers/{id}", err)
		return
	}

	h.logger.Info("DELETE /drivers/{id} - Driver deleted successfully: driver_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) driverID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	id, err := handlers.PathInt64(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("%s - Invalid driver ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidDriverID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.logger.Warn("%s - Invalid data: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	case errors.Is(err, domain.ErrNotFound):
		h.logger.Warn("%s - Driver not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, domain.ErrDuplicate):
		h.logger.Warn("%s - Duplicate license: %v", op, err)
		handlers.RespondConflict(w, msgDuplicateLicense)

	case errors.Is(err, domain.ErrInUse):
		h.logger.Warn("%s - Driver in use: %v", op, err)
		handlers.RespondConflict(w, msgDriverInUse)

	case errors.Is(err, domain.ErrTransport):
		h.logger.Error("%s - Store unavailable: %v", op, err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

	default:
		h.logger.Error("%s - Failed: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
