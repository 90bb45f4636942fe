package models

// AnalyticsSummary is the owner's dashboard roll-up. The money figures are
// aggregated from the clients' manual bookkeeping fields; TotalDue is
// billed minus paid.
type AnalyticsSummary struct {
	TotalClients int     `json:"totalClients"`
	TotalLeads   int     `json:"totalLeads"`
	TotalBlogs   int     `json:"totalBlogs"`
	TotalBilled  float64 `json:"totalBilled"`
	TotalPaid    float64 `json:"totalPaid"`
	TotalDue     float64 `json:"totalDue"`
}
