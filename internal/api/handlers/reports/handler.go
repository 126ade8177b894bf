package reports

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/service/reports/models"
)

const (
	msgInvalidParams    = "parámetros inválidos: date YYYY-MM-DD, schedule HH:MM, IDs numéricos"
	msgMissingParams    = "los parámetros date, routeId y schedule son obligatorios"
	msgRouteNotFound    = "ruta no encontrada"
	msgStoreUnavailable = "servicio no disponible, intente nuevamente"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Drivers GET /api/v1/reports/drivers
// Query params: date, schedule, driverId (все опциональны)
func (h *Handler) Drivers(w http.ResponseWriter, r *http.Request) {
	driverID, err := handlers.QueryInt64(r, "driverId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.DriverReport(r.Context(), &models.DriverReportRequest{
		Date:     handlers.QueryString(r, "date"),
		Schedule: handlers.QueryString(r, "schedule"),
		DriverID: driverID,
	})
	if err != nil {
		h.respondError(w, "GET /reports/drivers", err)
		return
	}

	h.logger.Info("GET /reports/drivers - Report built: drivers=%d, passengers=%d", len(result.Drivers), result.TotalPassengers)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Manifest GET /api/v1/reports/manifest
// Query params: date, routeId, schedule - все обязательны. Ответ - PDF.
func (h *Handler) Manifest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	date, routeIDStr, schedule := query.Get("date"), query.Get("routeId"), query.Get("schedule")
	if date == "" || routeIDStr == "" || schedule == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	routeID, err := strconv.ParseInt(routeIDStr, 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	pdf, err := h.service.Manifest(r.Context(), &models.ManifestRequest{Date: date, RouteID: routeID, Schedule: schedule})
	if err != nil {
		h.respondError(w, "GET /reports/manifest", err)
		return
	}

	h.logger.Info("GET /reports/manifest - Manifest generated: route_id=%d, date=%s, schedule=%s", routeID, date, schedule)
	handlers.RespondPDF(w, fmt.Sprintf("manifiesto-%d-%s.pdf", routeID, date), pdf)
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		h.logger.Warn("%s - Invalid params: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidParams)

	case errors.Is(err, domain.ErrNotFound):
		h.logger.Warn("%s - Route not found", op)
		handlers.RespondNotFound(w, msgRouteNotFound)

	case errors.Is(err, domain.ErrTransport):
		h.logger.Error("%s - Store unavailable: %v", op, err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

	default:
		h.logger.Error("%s - Failed: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
