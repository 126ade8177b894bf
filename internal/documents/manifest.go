package documents

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

// Manifest посадочная ведомость одного рейса
type Manifest struct {
	Company   domain.CompanyInfo
	Route     *domain.Route
	Date      time.Time
	Schedule  string
	Sales     []*domain.Sale // активные продажи рейса
	PrintedAt time.Time
}

var manifestColumns = []struct {
	title string
	width float64
}{
	{"Asiento", 18},
	{"Pasajero", 62},
	{"DNI", 25},
	{"Teléfono", 28},
	{"Conductor", 37},
	{"Total", 20},
}

// ManifestPDF ведомость: пассажиры по возрастанию номера места
func ManifestPDF(m Manifest) ([]byte, error) {
	p := newPage("Manifiesto " + m.Route.Name())

	p.companyHeader(m.Company)
	p.heading("MANIFIESTO DE PASAJEROS", 14)
	p.line("Ruta:", m.Route.Name())
	p.line("Fecha:", m.Date.Format("02/01/2006"))
	p.line("Hora de salida:", m.Schedule)
	p.line("Pasajeros:", fmt.Sprintf("%d / %d", len(m.Sales), domain.PassengerSeats))
	p.pdf.Ln(4)

	sales := make([]*domain.Sale, len(m.Sales))
	copy(sales, m.Sales)
	sort.Slice(sales, func(i, j int) bool { return sales[i].SeatNumber < sales[j].SeatNumber })

	p.pdf.SetFont(fontFamily, "B", 10)
	p.pdf.SetFillColor(230, 230, 230)
	for _, col := range manifestColumns {
		p.pdf.CellFormat(col.width, lineHeight, p.text(col.title), "1", 0, "C", true, 0, "")
	}
	p.pdf.Ln(-1)

	var total float64
	p.pdf.SetFont(fontFamily, "", 9)
	for _, s := range sales {
		total += s.Total
		cells := []string{s.SeatLabel(), s.PassengerName, s.PassengerDNI, orDash(s.PassengerPhone), s.DriverName, money(s.Total)}
		for j, col := range manifestColumns {
			align := "L"
			if j == 0 || j == len(cells)-1 {
				align = "C"
			}
			p.pdf.CellFormat(col.width, lineHeight, p.text(cells[j]), "1", 0, align, false, 0, "")
		}
		p.pdf.Ln(-1)
	}

	p.pdf.Ln(2)
	p.line("Recaudado:", money(total))
	p.footer(m.Company, m.PrintedAt)

	return p.bytes()
}
