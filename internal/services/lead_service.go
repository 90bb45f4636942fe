package services

import (
	"context"
	"time"

	"synctech/internal/ai"
	"synctech/internal/middleware"
	"synctech/internal/models"
)

type LeadSearcher interface {
	LeadSearch(ctx context.Context, req ai.LeadSearchRequest) (*ai.LeadSearchResult, error)
}

type SavedLeadStore interface {
	Create(lead *models.SavedLead) error
	ListByOwner(ownerID string) ([]*models.SavedLead, error)
	Delete(id, ownerID string) error
}

type LeadService struct {
	Flows LeadSearcher
	Store SavedLeadStore
}

func NewLeadService(flows LeadSearcher, store SavedLeadStore) *LeadService {
	return &LeadService{Flows: flows, Store: store}
}

// Search runs the lead search flow. Validation failures and backend errors
// both surface here unchanged; nothing is retried.
func (s *LeadService) Search(ctx context.Context, req ai.LeadSearchRequest) (*ai.LeadSearchResult, error) {
	res, err := s.Flows.LeadSearch(ctx, req)
	if err != nil {
		middleware.RecordGeneration("lead_search", "error")
		return nil, err
	}
	middleware.RecordGeneration("lead_search", "success")
	return res, nil
}

// Save copies a generated lead into the owner's saved leads. The lead
// fields pass through untouched.
func (s *LeadService) Save(ownerID string, lead models.Lead) (*models.SavedLead, error) {
	saved := &models.SavedLead{
		OwnerID:       ownerID,
		SchemaVersion: ai.LeadSchemaVersion,
		CreatedAt:     time.Now(),
		Lead:          lead,
	}
	if err := s.Store.Create(saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *LeadService) ListSaved(ownerID string) ([]*models.SavedLead, error) {
	return s.Store.ListByOwner(ownerID)
}

func (s *LeadService) DeleteSaved(id, ownerID string) error {
	return s.Store.Delete(id, ownerID)
}
