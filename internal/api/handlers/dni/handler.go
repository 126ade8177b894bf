package dni

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gorilla/mux"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/integrations/dniservice"
)

const (
	msgInvalidDNI        = "el DNI debe tener 8 dígitos"
	msgPersonNotFound    = "no se encontró una persona con ese DNI"
	msgLookupUnavailable = "el servicio de consulta de DNI no está disponible"
)

var dniPattern = regexp.MustCompile(`^\d{8}$`)

type Handler struct {
	lookup PersonLookup
	logger Logger
}

func NewHandler(lookup PersonLookup, logger Logger) *Handler {
	return &Handler{
		lookup: lookup,
		logger: logger,
	}
}

// Handle GET /api/v1/dni/{dni}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dni := mux.Vars(r)["dni"]
	if !dniPattern.MatchString(dni) {
		h.logger.Warn("GET /dni/{dni} - Invalid DNI: %q", dni)
		handlers.RespondBadRequest(w, msgInvalidDNI)
		return
	}

	person, err := h.lookup.Lookup(r.Context(), dni)
	if err != nil {
		switch {
		case errors.Is(err, dniservice.ErrPersonNotFound):
			h.logger.Info("GET /dni/{dni} - Person not found: dni=%s", dni)
			handlers.RespondNotFound(w, msgPersonNotFound)

		case dniservice.IsTransport(err):
			h.logger.Error("GET /dni/{dni} - Lookup service failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgLookupUnavailable)

		default:
			h.logger.Error("GET /dni/{dni} - Failed to look up DNI: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, person)
}
