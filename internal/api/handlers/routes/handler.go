package routes

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/service/routes/models"
)

const (
	msgInvalidRouteID     = "ID de ruta inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "datos de la ruta inválidos: origen, destino, precio mayor a 0 y horario HH:MM son obligatorios"
	msgNotFound           = "ruta no encontrada"
	msgDuplicateRoute     = "ya existe una ruta con el mismo origen, destino y horario"
	msgRouteInUse         = "la ruta tiene ventas o encomiendas registradas"
	msgStoreUnavailable   = "servicio no disponible, intente nuevamente"
)

type Handler struct {
	service RouteService
	logger  Logger
}

func NewHandler(service RouteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/routes
// Query params: status (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), handlers.QueryString(r, "status"))
	if err != nil {
		h.respondError(w, "GET /routes", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/routes/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.routeID(w, r, "GET /routes/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /routes/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/routes
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRouteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /routes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /routes", err)
		return
	}

	h.logger.Info("POST /routes - Route created successfully: route_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/routes/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.routeID(w, r, "PUT /routes/{id}")
	if !ok {
		return
	}

	var req models.UpdateRouteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /routes/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /routes/{id}", err)
		return
	}

	h.logger.Info("PUT /routes/{id} - Route updated successfully: route_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/routes/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.routeID(w, r, "DELETE /routes/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /routes/{id}", err)
		return
	}

	h.logger.Info("DELETE /routes/{id} - Route deleted successfully: route_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) routeID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	id, err := handlers.PathInt64(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("%s - Invalid route ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRouteID)
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
		h.logger.Warn("%s - Route not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, domain.ErrDuplicate):
		h.logger.Warn("%s - Duplicate route: %v", op, err)
		handlers.RespondConflict(w, msgDuplicateRoute)

	case errors.Is(err, domain.ErrInUse):
		h.logger.Warn("%s - Route in use: %v", op, err)
		handlers.RespondConflict(w, msgRouteInUse)

	case errors.Is(err, domain.ErrTransport):
		h.logger.Error("%s - Store unavailable: %v", op, err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

	default:
		h.logger.Error("%s - Failed: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
