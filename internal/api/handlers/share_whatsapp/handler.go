package share_whatsapp

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WJL-TicketService/internal/api/handlers"
	"github.com/m04kA/WJL-TicketService/internal/domain"
	"github.com/m04kA/WJL-TicketService/internal/notify/whatsapp"
)

const (
	msgSaleNotFound     = "venta no encontrada"
	msgPackageNotFound  = "encomienda no encontrada"
	msgNoPhone          = "el cliente no tiene número de teléfono registrado"
	msgStoreUnavailable = "servicio no disponible, intente nuevamente"
)

type Handler struct {
	sales        SaleProvider
	parcels      ParcelProvider
	drivers      DriverProvider
	company      CompanyProvider
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(
	sales SaleProvider,
	parcels ParcelProvider,
	drivers DriverProvider,
	company CompanyProvider,
	timeProvider TimeProvider,
	logger Logger,
) *Handler {
	return &Handler{
		sales:        sales,
		parcels:      parcels,
		drivers:      drivers,
		company:      company,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Sale GET /api/v1/sales/{id}/whatsapp
// Ссылка на отправку билета пассажиру
func (h *Handler) Sale(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	sale, err := h.sales.GetSale(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /sales/{id}/whatsapp", msgSaleNotFound, err)
		return
	}

	company, err := h.company.GetInfo(r.Context())
	if err != nil {
		h.respondError(w, "GET /sales/{id}/whatsapp", msgSaleNotFound, err)
		return
	}

	// Без водителя сообщение просто не содержит его контактов
	var driver *domain.Driver
	if sale.DriverID > 0 {
		if driver, err = h.drivers.GetByID(r.Context(), sale.DriverID); err != nil {
			h.logger.Warn("GET /sales/{id}/whatsapp - Driver id=%d unavailable: %v", sale.DriverID, err)
			driver = nil
		}
	}

	message := whatsapp.TicketMessage(sale, driver, toCompany(company), h.timeProvider.Now())
	link, err := whatsapp.NewLink(sale.PassengerPhone, message)
	if err != nil {
		h.respondLinkError(w, "GET /sales/{id}/whatsapp", err)
		return
	}

	h.logger.Info("GET /sales/{id}/whatsapp - Link built: sale_id=%s, valid_phone=%t", id, link.Valid)
	handlers.RespondJSON(w, http.StatusOK, link)
}

// Package GET /api/v1/packages/{id}/whatsapp
// Ссылка на отправку данных посылки отправителю
func (h *Handler) Package(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	parcel, err := h.parcels.GetParcel(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /packages/{id}/whatsapp", msgPackageNotFound, err)
		return
	}

	company, err := h.company.GetInfo(r.Context())
	if err != nil {
		h.respondError(w, "GET /packages/{id}/whatsapp", msgPackageNotFound, err)
		return
	}

	var phone string
	if parcel.SenderPhone != nil {
		phone = *parcel.SenderPhone
	}

	link, err := whatsapp.NewLink(phone, whatsapp.PackageMessage(parcel, toCompany(company)))
	if err != nil {
		h.respondLinkError(w, "GET /packages/{id}/whatsapp", err)
		return
	}

	h.logger.Info("GET /packages/{id}/whatsapp - Link built: package_id=%s, valid_phone=%t", id, link.Valid)
	handlers.RespondJSON(w, http.StatusOK, link)
}

func toCompany(c *domain.CompanyInfo) whatsapp.Company {
	return whatsapp.Company{Name: c.Name, Phone: c.Phone}
}

func (h *Handler) respondLinkError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, whatsapp.ErrNoPhone) {
		h.logger.Warn("%s - Recipient has no phone", op)
		handlers.RespondBadRequest(w, msgNoPhone)
		return
	}
	h.logger.Error("%s - Failed to build link: %v", op, err)
	handlers.RespondInternalError(w)
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
