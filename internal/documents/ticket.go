package documents

import (
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// Ticket билет пассажира
func Ticket(sale *domain.Sale, company domain.CompanyInfo, printedAt time.Time) ([]byte, error) {
	p := newPage("Boleta " + sale.ID)

	p.companyHeader(company)
	p.heading("BOLETA DE VIAJE", 14)
	p.line("N° Boleta:", sale.ID)
	p.line("Emisión:", printedAt.Format("02/01/2006 15:04"))

	p.section("Pasajero")
	p.line("Nombre:", sale.PassengerName)
	p.line("DNI:", sale.PassengerDNI)
	p.line("Teléfono:", orDash(sale.PassengerPhone))

	p.section("Viaje")
	p.line("Ruta:", sale.FromCity+" → "+sale.ToCity)
	p.line("Fecha:", sale.TravelDate.Format("02/01/2006"))
	p.line("Hora de salida:", sale.ScheduleTime)
	p.line("Asiento:", sale.SeatLabel())
	p.line("Conductor:", sale.DriverName)

	p.section("Pago")
	p.line("Total:", money(sale.Total))
	p.line("Estado:", sale.Status.Label())

	p.pdf.Ln(4)
	p.note("Llegue 15 minutos antes de la hora de salida. Presente su DNI al abordar.")
	p.footer(company, printedAt)

	return p.bytes()
}

// TicketName имя файла билета в архиве
func TicketName(sale *domain.Sale) string {
	return sale.TravelDate.Format("2006/01/02") + "/" + sale.ID + ".pdf"
}
