package models

// LineItem is one billable row on an invoice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Invoice is assembled in memory for preview and PDF export; invoices are
// not persisted and never feed back into client balances.
type Invoice struct {
	ClientName  string     `json:"clientName"`
	ClientEmail string     `json:"clientEmail"`
	Items       []LineItem `json:"items"`
	TaxRate     float64    `json:"taxRate"` // percent
}

// InvoiceTotals is the computed money summary for an Invoice.
type InvoiceTotals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"taxAmount"`
	Total     float64 `json:"total"`
}
