// Package pdf renders invoices for download. Layout only; all the money
// math happens in the invoice service.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"synctech/internal/models"
)

type InvoiceGenerator struct {
	companyName string
}

func NewInvoiceGenerator(companyName string) *InvoiceGenerator {
	if companyName == "" {
		companyName = "SYNC TECH"
	}
	return &InvoiceGenerator{companyName: companyName}
}

func (g *InvoiceGenerator) GenerateInvoice(inv models.Invoice, totals models.InvoiceTotals) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice for %s", inv.ClientName), false)
	pdf.SetAuthor(g.companyName, false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "INVOICE", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s  |  %s", g.companyName, time.Now().Format("02 Jan 2006")), "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	// Billed to
	g.sectionTitle(pdf, "Billed To")
	g.kvLine(pdf, "Client", inv.ClientName)
	if inv.ClientEmail != "" {
		g.kvLine(pdf, "Email", inv.ClientEmail)
	}
	pdf.Ln(2)
	g.hr(pdf)

	// Line items
	g.sectionTitle(pdf, "Services")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(100, 7, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, "Amount", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range inv.Items {
		amount := float64(item.Quantity) * item.Price
		pdf.CellFormat(100, 7, item.Description, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, money(item.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, money(amount), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
	g.hr(pdf)

	// Totals
	g.sectionTitle(pdf, "Totals")
	g.kvLine(pdf, "Subtotal", money(totals.Subtotal))
	g.kvLine(pdf, fmt.Sprintf("Tax (%.2f%%)", inv.TaxRate), money(totals.TaxAmount))
	pdf.SetFont("Helvetica", "B", 12)
	g.kvLine(pdf, "Total", money(totals.Total))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func (g *InvoiceGenerator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
}

func (g *InvoiceGenerator) kvLine(pdf *gofpdf.Fpdf, key, value string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(45, 7, key+":", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func (g *InvoiceGenerator) hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.Line(left, y, pageW-right, y)
	pdf.SetXY(x, y+2)
}
