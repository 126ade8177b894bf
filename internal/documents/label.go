package documents

import (
	"fmt"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// Label этикетка посылки
func Label(parcel *domain.Parcel, company domain.CompanyInfo, printedAt time.Time) ([]byte, error) {
	p := newPage("Encomienda " + parcel.ID)

	p.companyHeader(company)
	p.heading("ENCOMIENDA", 14)
	p.heading(parcel.TrackingCode, 20)
	p.line("Código:", parcel.ID)
	p.line("Fecha de envío:", parcel.TravelDate.Format("02/01/2006"))
	p.line("Ruta:", parcel.FromCity+" → "+parcel.ToCity)

	p.section("Remitente")
	p.line("Nombre:", parcel.SenderName)
	p.line("DNI:", parcel.SenderDNI)
	p.line("Teléfono:", orDash(deref(parcel.SenderPhone)))

	p.section("Destinatario")
	p.line("Nombre:", parcel.RecipientName)
	p.line("DNI:", parcel.RecipientDNI)
	p.line("Teléfono:", orDash(deref(parcel.RecipientPhone)))

	p.section("Contenido")
	p.line("Descripción:", parcel.Description)
	p.line("Peso:", fmt.Sprintf("%.2f kg", parcel.Weight))
	p.line("Valor declarado:", money(parcel.DeclaredValue))
	p.line("Total:", money(parcel.Total))
	p.line("Estado:", parcel.Status.Label())

	p.pdf.Ln(4)
	p.note("El destinatario debe presentar su DNI para recoger la encomienda.")
	p.footer(company, printedAt)

	return p.bytes()
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
