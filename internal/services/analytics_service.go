package services

import (
	"synctech/internal/models"
)

type ClientBillingStore interface {
	BillingByOwner(ownerID string) (count int, billed, paid float64, err error)
}

type SavedLeadCounter interface {
	CountByOwner(ownerID string) (int, error)
}

type BlogPostCounter interface {
	CountByOwner(ownerID string) (int, error)
}

// AnalyticsService rolls the owner's collections up into dashboard figures.
type AnalyticsService struct {
	Clients ClientBillingStore
	Leads   SavedLeadCounter
	Blogs   BlogPostCounter
}

func NewAnalyticsService(clients ClientBillingStore, leads SavedLeadCounter, blogs BlogPostCounter) *AnalyticsService {
	return &AnalyticsService{Clients: clients, Leads: leads, Blogs: blogs}
}

func (s *AnalyticsService) Summary(ownerID string) (*models.AnalyticsSummary, error) {
	clientCount, billed, paid, err := s.Clients.BillingByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	leadCount, err := s.Leads.CountByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	blogCount, err := s.Blogs.CountByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return &models.AnalyticsSummary{
		TotalClients: clientCount,
		TotalLeads:   leadCount,
		TotalBlogs:   blogCount,
		TotalBilled:  billed,
		TotalPaid:    paid,
		TotalDue:     billed - paid,
	}, nil
}
