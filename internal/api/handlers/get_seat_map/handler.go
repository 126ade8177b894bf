package get_seat_map

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/session"
	getSeatMap "github.com/m04kA/WJL-TicketService/internal/usecase/get_seat_map"
)

const (
	msgMissingParams    = "los parámetros date, routeId y schedule son obligatorios"
	msgInvalidParams    = "parámetros inválidos: date YYYY-MM-DD, routeId numérico, schedule HH:MM"
	msgRouteNotFound    = "ruta no encontrada"
	msgNoSession        = "se requiere iniciar sesión"
	msgStoreUnavailable = "servicio no disponible, intente nuevamente"
)

type Handler struct {
	useCase GetSeatMapUseCase
	logger  Logger
}

func NewHandler(useCase GetSeatMapUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/seat-map
// Query params: date (YYYY-MM-DD), routeId, schedule (HH:MM) - все обязательны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		handlers.RespondUnauthorized(w, msgNoSession)
		return
	}

	query := r.URL.Query()
	dateStr, routeIDStr, schedule := query.Get("date"), query.Get("routeId"), query.Get("schedule")
	if dateStr == "" || routeIDStr == "" || schedule == "" {
		h.logger.Warn("GET /seat-map - Missing params: date=%q, routeId=%q, schedule=%q", dateStr, routeIDStr, schedule)
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, routeIDStr, schedule, sess)
	if err != nil {
		h.logger.Warn("GET /seat-map - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("GET /seat-map - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, domain.ErrNotFound):
			h.logger.Warn("GET /seat-map - Route not found: route_id=%s", routeIDStr)
			handlers.RespondNotFound(w, msgRouteNotFound)

		case errors.Is(err, domain.ErrTransport):
			h.logger.Error("GET /seat-map - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /seat-map - Failed to build seat map: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /seat-map - Seat map built: route_id=%d, date=%s, schedule=%s, available=%d",
		result.Route.ID, result.SeatMap.Date, result.SeatMap.Schedule, result.SeatMap.AvailableSeats)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// Reload POST /api/v1/seat-map/reload
// Query params: date (опционально) - перезагрузить только продажи на эту дату
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		handlers.RespondUnauthorized(w, msgNoSession)
		return
	}

	req := &getSeatMap.ReloadRequest{Inventory: sess}
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("POST /seat-map/reload - Invalid date %q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.Date = &date
	}

	result, err := h.useCase.Reload(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrTransport) {
			h.logger.Error("POST /seat-map/reload - Store unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)
			return
		}
		h.logger.Error("POST /seat-map/reload - Failed to reload inventory: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /seat-map/reload - Inventory reloaded: session=%s, sales=%d, trips=%d",
		sess.ID(), result.Sales, result.Trips)
	handlers.RespondJSON(w, http.StatusOK, ReloadResponse{Sales: result.Sales, Trips: result.Trips})
}
