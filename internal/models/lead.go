package models

import "time"

// Lead is a single prospect produced by the lead search flow. Only
// CompanyName through TechNeeds are guaranteed; the remaining fields were
// introduced by later revisions of the search prompt and stay optional so
// records written under the narrower shape still decode.
type Lead struct {
	CompanyName string   `json:"companyName"`
	Summary     string   `json:"summary"`
	PainPoints  string   `json:"painPoints"`
	TechNeeds   string   `json:"techNeeds"`
	ContactName string   `json:"contactName,omitempty"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"website,omitempty"`
	Address     string   `json:"address,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Reviews     string   `json:"reviews,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// SavedLead is a Lead copied into the savedLeads collection. SchemaVersion
// records which revision of the lead shape produced the row.
type SavedLead struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"userId"`
	SchemaVersion int       `json:"schemaVersion"`
	CreatedAt     time.Time `json:"createdAt"`
	Lead
}
