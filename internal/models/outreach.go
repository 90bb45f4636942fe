package models

// OutreachContent is generated sales copy for one lead. It is returned to
// the caller for display and optional sending; it is never persisted.
type OutreachContent struct {
	EmailSubject    string `json:"emailSubject"`
	EmailBody       string `json:"emailBody"`
	ProposalOutline string `json:"proposalOutline"`
}
