// Package documents генерирует печатные формы в PDF: билет, этикетку посылки
// и посадочную ведомость рейса
package documents

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/WJL-TicketService/internal/domain"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 7.0
)

// cp1252 не содержит стрелку, заменяем её до перекодировки
var arrows = strings.NewReplacer("→", "-")

// page обёртка над gofpdf с перекодировкой UTF-8 -> cp1252 для испанского текста
type page struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newPage(title string) *page {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	return &page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (p *page) text(s string) string {
	return p.tr(arrows.Replace(s))
}

func (p *page) heading(s string, size float64) {
	p.pdf.SetFont(fontFamily, "B", size)
	p.pdf.CellFormat(0, 10, p.text(s), "", 1, "C", false, 0, "")
}

func (p *page) section(s string) {
	p.pdf.Ln(3)
	p.pdf.SetFont(fontFamily, "B", 12)
	p.pdf.Cell(0, lineHeight, p.text(s))
	p.pdf.Ln(lineHeight)
}

func (p *page) line(label, value string) {
	p.pdf.SetFont(fontFamily, "B", 11)
	p.pdf.Cell(45, lineHeight, p.text(label))
	p.pdf.SetFont(fontFamily, "", 11)
	p.pdf.Cell(0, lineHeight, p.text(value))
	p.pdf.Ln(lineHeight)
}

func (p *page) note(s string) {
	p.pdf.SetFont(fontFamily, "I", 9)
	p.pdf.MultiCell(0, 5, p.text(s), "", "C", false)
}

// companyHeader шапка с реквизитами компании
func (p *page) companyHeader(company domain.CompanyInfo) {
	p.heading(company.Name, 16)
	p.pdf.SetFont(fontFamily, "", 10)
	p.pdf.CellFormat(0, 5, p.text("RUC: "+company.RUC), "", 1, "C", false, 0, "")
	p.pdf.CellFormat(0, 5, p.text(company.Address), "", 1, "C", false, 0, "")
	p.pdf.CellFormat(0, 5, p.text("Tel: "+company.Phone), "", 1, "C", false, 0, "")
	p.pdf.Ln(4)
}

func (p *page) footer(company domain.CompanyInfo, printedAt time.Time) {
	p.pdf.Ln(6)
	p.note("Impreso el: " + printedAt.Format("02/01/2006 15:04"))
	p.note(company.Address + " - RUC: " + company.RUC)
}

func (p *page) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func money(amount float64) string {
	return fmt.Sprintf("S/ %.2f", amount)
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
