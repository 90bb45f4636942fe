package models

import "time"

// Client represents a counterparty the operator works with. TotalBilled and
// TotalPaid are manual bookkeeping figures; they are never derived from
// generated invoices.
type Client struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"userId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Services    string    `json:"services"`
	WorkDone    string    `json:"workDone,omitempty"`
	WorkLeft    string    `json:"workLeft,omitempty"`
	Progress    int       `json:"progress"` // 0-100
	TotalBilled float64   `json:"totalBilled"`
	TotalPaid   float64   `json:"totalPaid"`
	CreatedAt   time.Time `json:"createdAt"`
}
