package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"synctech/internal/ai"
	"synctech/internal/models"
)

type MockLeadSearcher struct {
	mock.Mock
}

func (m *MockLeadSearcher) LeadSearch(ctx context.Context, req ai.LeadSearchRequest) (*ai.LeadSearchResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.LeadSearchResult), args.Error(1)
}

// fakeLeadStore is an in-memory SavedLeadStore.
type fakeLeadStore struct {
	leads map[string]*models.SavedLead
}

func newFakeLeadStore() *fakeLeadStore {
	return &fakeLeadStore{leads: map[string]*models.SavedLead{}}
}

func (f *fakeLeadStore) Create(lead *models.SavedLead) error {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	stored := *lead
	f.leads[lead.ID] = &stored
	return nil
}

func (f *fakeLeadStore) ListByOwner(ownerID string) ([]*models.SavedLead, error) {
	var res []*models.SavedLead
	for _, l := range f.leads {
		if l.OwnerID == ownerID {
			res = append(res, l)
		}
	}
	return res, nil
}

func (f *fakeLeadStore) Delete(id, ownerID string) error {
	if l, ok := f.leads[id]; ok && l.OwnerID == ownerID {
		delete(f.leads, id)
	}
	return nil
}

func TestSearchDelegatesToFlow(t *testing.T) {
	flows := new(MockLeadSearcher)
	want := &ai.LeadSearchResult{Leads: []models.Lead{{CompanyName: "Acme", Summary: "sums"}}}
	flows.On("LeadSearch", mock.Anything, ai.LeadSearchRequest{Industry: "retail", Location: "Galway"}).
		Return(want, nil)

	svc := NewLeadService(flows, newFakeLeadStore())
	got, err := svc.Search(context.Background(), ai.LeadSearchRequest{Industry: "retail", Location: "Galway"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSearchErrorPropagates(t *testing.T) {
	flows := new(MockLeadSearcher)
	flows.On("LeadSearch", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	svc := NewLeadService(flows, newFakeLeadStore())
	_, err := svc.Search(context.Background(), ai.LeadSearchRequest{Industry: "retail", Location: "Galway"})
	assert.Error(t, err)
}

func TestSaveRoundTripsLeadFields(t *testing.T) {
	store := newFakeLeadStore()
	svc := NewLeadService(new(MockLeadSearcher), store)

	rating := 4.2
	lead := models.Lead{
		CompanyName: "Murphy's Bakery",
		Summary:     "Family bakery with no website.",
		PainPoints:  "No online ordering.",
		TechNeeds:   "E-commerce website.",
		ContactName: "Anne Murphy",
		Rating:      &rating,
	}
	saved, err := svc.Save("user-1", lead)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "user-1", saved.OwnerID)
	assert.Equal(t, ai.LeadSchemaVersion, saved.SchemaVersion)
	assert.False(t, saved.CreatedAt.IsZero())

	listed, err := svc.ListSaved("user-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, lead.CompanyName, listed[0].CompanyName)
	assert.Equal(t, lead.Summary, listed[0].Summary)
	assert.Equal(t, lead.PainPoints, listed[0].PainPoints)
	assert.Equal(t, lead.TechNeeds, listed[0].TechNeeds)
}

func TestListSavedScopedToOwner(t *testing.T) {
	store := newFakeLeadStore()
	svc := NewLeadService(new(MockLeadSearcher), store)

	_, err := svc.Save("user-1", models.Lead{CompanyName: "Mine", Summary: "s", PainPoints: "p", TechNeeds: "t"})
	require.NoError(t, err)
	_, err = svc.Save("user-2", models.Lead{CompanyName: "Theirs", Summary: "s", PainPoints: "p", TechNeeds: "t"})
	require.NoError(t, err)

	listed, err := svc.ListSaved("user-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Mine", listed[0].CompanyName)
}

func TestDeleteSavedIsIdempotent(t *testing.T) {
	store := newFakeLeadStore()
	svc := NewLeadService(new(MockLeadSearcher), store)

	saved, err := svc.Save("user-1", models.Lead{CompanyName: "Acme", Summary: "s", PainPoints: "p", TechNeeds: "t"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSaved(saved.ID, "user-1"))
	require.NoError(t, svc.DeleteSaved(saved.ID, "user-1")) // second delete is a no-op

	listed, err := svc.ListSaved("user-1")
	require.NoError(t, err)
	assert.Empty(t, listed)
}
