package services

import (
	"errors"
	"math"
	"strings"

	"synctech/internal/models"
)

// PresetServices are the standard SYNC TECH offerings selectable as invoice
// line items.
var PresetServices = []models.LineItem{
	{Description: "AI Chatbot Integration", Quantity: 1, Price: 5000},
	{Description: "Cloud Migration", Quantity: 1, Price: 10000},
	{Description: "Custom API Development", Quantity: 1, Price: 7500},
	{Description: "UX/UI Design System", Quantity: 1, Price: 8000},
}

type InvoicePDFGenerator interface {
	GenerateInvoice(inv models.Invoice, totals models.InvoiceTotals) ([]byte, error)
}

type InvoiceService struct {
	PDF InvoicePDFGenerator
}

func NewInvoiceService(pdfGen InvoicePDFGenerator) *InvoiceService {
	return &InvoiceService{PDF: pdfGen}
}

// Totals computes the money summary. Invoice totals are never written back
// to a client's billed/paid figures.
func (s *InvoiceService) Totals(inv models.Invoice) models.InvoiceTotals {
	var subtotal float64
	for _, item := range inv.Items {
		subtotal += float64(item.Quantity) * item.Price
	}
	tax := subtotal * inv.TaxRate / 100
	return models.InvoiceTotals{
		Subtotal:  round2(subtotal),
		TaxAmount: round2(tax),
		Total:     round2(subtotal + tax),
	}
}

func (s *InvoiceService) RenderPDF(inv models.Invoice) ([]byte, error) {
	if strings.TrimSpace(inv.ClientName) == "" {
		return nil, errors.New("client name is required")
	}
	if len(inv.Items) == 0 {
		return nil, errors.New("invoice needs at least one line item")
	}
	return s.PDF.GenerateInvoice(inv, s.Totals(inv))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
