package print_documents

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/documents"
	"github.com/m04kA/WJL-TicketService/internal/domain"
)

const (
	msgSaleNotFound     = "venta no encontrada"
	msgPackageNotFound  = "encomienda no encontrada"
	msgStoreUnavailable = "servicio no disponible, intente nuevamente"
)

const archiveTimeout = 30 * time.Second

type Handler struct {
	sales        SaleProvider
	parcels      ParcelProvider
	company      CompanyProvider
	archive      Archive
	timeProvider TimeProvider
	logger       Logger
}

// NewHandler archive может быть nil - билеты тогда не архивируются
func NewHandler(
	sales SaleProvider,
	parcels ParcelProvider,
	company CompanyProvider,
	archive Archive,
	timeProvider TimeProvider,
	logger Logger,
) *Handler {
	return &Handler{
		sales:        sales,
		parcels:      parcels,
		company:      company,
		archive:      archive,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Ticket GET /api/v1/sales/{id}/ticket
func (h *Handler) Ticket(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	sale, err := h.sales.GetSale(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /sales/{id}/ticket", msgSaleNotFound, err)
		return
	}

	company, err := h.company.GetInfo(r.Context())
	if err != nil {
		h.respondError(w, "GET /sales/{id}/ticket", msgSaleNotFound, err)
		return
	}

	pdf, err := documents.Ticket(sale, *company, h.timeProvider.Now())
	if err != nil {
		h.logger.Error("GET /sales/{id}/ticket - Failed to render ticket %s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	if h.archive != nil {
		go h.archiveTicket(documents.TicketName(sale), pdf)
	}

	h.logger.Info("GET /sales/{id}/ticket - Ticket printed: sale_id=%s", id)
	handlers.RespondPDF(w, "boleta-"+sale.ID+".pdf", pdf)
}

// Label GET /api/v1/packages/{id}/label
func (h *Handler) Label(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	parcel, err := h.parcels.GetParcel(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /packages/{id}/label", msgPackageNotFound, err)
		return
	}

	company, err := h.company.GetInfo(r.Context())
	if err != nil {
		h.respondError(w, "GET /packages/{id}/label", msgPackageNotFound, err)
		return
	}

	pdf, err := documents.Label(parcel, *company, h.timeProvider.Now())
	if err != nil {
		h.logger.Error("GET /packages/{id}/label - Failed to render label %s: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /packages/{id}/label - Label printed: package_id=%s", id)
	handlers.RespondPDF(w, "etiqueta-"+parcel.ID+".pdf", pdf)
}

// archiveTicket ошибки архива не влияют на ответ клиенту
func (h *Handler) archiveTicket(name string, pdf []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()

	location, err := h.archive.Put(ctx, name, pdf)
	if err != nil {
		h.logger.Warn("Archive - Failed to store ticket %s: %v", name, err)
		return
	}
	h.logger.Info("Archive - Ticket stored: %s", location)
}

func (h *Handler) respondError(w http.ResponseWriter, op, notFound string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.logger.Warn("%s - Not found: %v", op, err)
		handlers.RespondNotFound(w, notFound)

	case errors.Is(err, domain.ErrTransport):
		h.logger.Error("%s - Store unavailable: %v", op, err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

	default:
		h.logger.Error("%s - Failed: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
