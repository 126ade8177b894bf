package company

import (
	"errors"
	"net/http"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/service/company/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "datos de la empresa inválidos: nombre, RUC, dirección y teléfono son obligatorios"
	msgStoreUnavailable   = "servicio no disponible, intente nuevamente"
)

type Handler struct {
	service CompanyService
	logger  Logger
}

func NewHandler(service CompanyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/company
// Без сохранённых реквизитов возвращает значения из конфигурации
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /company - Failed to get company info: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PUT /api/v1/company
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCompanyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /company - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PUT /company - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, domain.ErrTransport):
			h.logger.Error("PUT /company - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("PUT /company - Failed to update company info: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /company - Company info updated: name=%s", result.Name)
	handlers.RespondJSON(w, http.StatusOK, result)
}
