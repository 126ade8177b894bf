package packages

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/service/packages/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "datos de la encomienda inválidos"
	msgNotFound           = "encomienda no encontrada"
	msgDuplicateCode      = "el código de seguimiento ya existe"
	msgInTransit          = "no se puede eliminar una encomienda en tránsito"
	msgStoreUnavailable   = "servicio no disponible, intente nuevamente"
)

type Handler struct {
	service PackageService
	logger  Logger
}

func NewHandler(service PackageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/packages
// Query params: status, trackingCode, senderDni, recipientDni (все опциональны)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), &models.ListPackagesRequest{
		Status:       handlers.QueryString(r, "status"),
		TrackingCode: handlers.QueryString(r, "trackingCode"),
		SenderDNI:    handlers.QueryString(r, "senderDni"),
		RecipientDNI: handlers.QueryString(r, "recipientDni"),
	})
	if err != nil {
		h.respondError(w, "GET /packages", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/packages/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, "GET /packages/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/packages
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /packages", err)
		return
	}

	h.logger.Info("POST /packages - Package created successfully: package_id=%s, tracking=%s", result.ID, result.TrackingCode)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/packages/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdatePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /packages/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /packages/{id}", err)
		return
	}

	h.logger.Info("PUT /packages/{id} - Package updated successfully: package_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateStatus PATCH /api/v1/packages/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /packages/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PATCH /packages/{id}/status", err)
		return
	}

	h.logger.Info("PATCH /packages/{id}/status - Package status updated: package_id=%s, status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/packages/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /packages/{id}", err)
		return
	}

	h.logger.Info("DELETE /packages/{id} - Package deleted successfully: package_id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.logger.Warn("%s - Invalid data: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	case errors.Is(err, domain.ErrNotFound):
		h.logger.Warn("%s - Package not found", op)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, domain.ErrDuplicate):
		h.logger.Warn("%s - Duplicate tracking code: %v", op, err)
		handlers.RespondConflict(w, msgDuplicateCode)

	case errors.Is(err, domain.ErrInUse):
		h.logger.Warn("%s - Package in transit: %v", op, err)
		handlers.RespondConflict(w, msgInTransit)

	case errors.Is(err, domain.ErrTransport):
		h.logger.Error("%s - Store unavailable: %v", op, err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

	default:
		h.logger.Error("%s - Failed: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
