package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"synctech/internal/ai"
	"synctech/internal/models"
	"synctech/internal/schema"
	"synctech/internal/services"
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

// testAuth stands in for the JWT middleware in handler tests.
func testAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role_id", 10)
		c.Next()
	}
}

func newLeadRouter(flows *MockLeadSearcher, store *fakeLeadStore, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewLeadHandler(services.NewLeadService(flows, store))
	r := gin.New()
	g := r.Group("/", testAuth(userID))
	g.POST("/leads/search", handler.Search)
	g.POST("/leads/saved", handler.Save)
	g.GET("/leads/saved", handler.ListSaved)
	g.DELETE("/leads/saved/:id", handler.DeleteSaved)
	return r
}

func TestLeadSearchEndpoint(t *testing.T) {
	flows := new(MockLeadSearcher)
	flows.On("LeadSearch", mock.Anything, ai.LeadSearchRequest{Industry: "restaurants", Location: "Dublin"}).
		Return(&ai.LeadSearchResult{Leads: []models.Lead{{CompanyName: "The Brass Fox"}}}, nil)
	router := newLeadRouter(flows, newFakeLeadStore(), "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leads/search",
		strings.NewReader(`{"industry":"restaurants","location":"Dublin"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The Brass Fox")
}

func TestLeadSearchInvalidInputIs400(t *testing.T) {
	flows := new(MockLeadSearcher)
	flows.On("LeadSearch", mock.Anything, mock.Anything).
		Return(nil, schema.Violations{{Field: "industry", Message: "must be at least 3 characters"}})
	router := newLeadRouter(flows, newFakeLeadStore(), "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leads/search",
		strings.NewReader(`{"industry":"ab","location":"Dublin"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "industry")
}

// cannedGenerator returns a fixed response for every generation call.
type cannedGenerator struct {
	response string
}

func (g cannedGenerator) Generate(_ context.Context, _ string, _ *genai.Schema) (json.RawMessage, error) {
	return json.RawMessage(g.response), nil
}

func TestLeadSearchNonconformantModelOutputIs502(t *testing.T) {
	gin.SetMode(gin.TestMode)
	flows := ai.NewFlows(cannedGenerator{response: `{"leads":[{"companyName":"Acme"}]}`})
	handler := NewLeadHandler(services.NewLeadService(flows, newFakeLeadStore()))
	r := gin.New()
	r.POST("/leads/search", testAuth("user-1"), handler.Search)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leads/search",
		strings.NewReader(`{"industry":"restaurants","location":"Dublin"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "model output rejected")
	assert.NotContains(t, w.Body.String(), `"errors"`)
}

func TestSaveAndListSavedLeads(t *testing.T) {
	store := newFakeLeadStore()
	router := newLeadRouter(new(MockLeadSearcher), store, "user-1")

	body := `{"companyName":"Murphy's Bakery","summary":"Family bakery.","painPoints":"No online ordering.","techNeeds":"E-commerce site."}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leads/saved", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/leads/saved", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Murphy's Bakery")
}

func TestSaveLeadRequiresCompanyName(t *testing.T) {
	router := newLeadRouter(new(MockLeadSearcher), newFakeLeadStore(), "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/leads/saved",
		strings.NewReader(`{"summary":"no name"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "companyName")
}

func TestListSavedReturnsEmptyArray(t *testing.T) {
	router := newLeadRouter(new(MockLeadSearcher), newFakeLeadStore(), "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/leads/saved", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestDeleteSavedLead(t *testing.T) {
	store := newFakeLeadStore()
	lead := &models.SavedLead{OwnerID: "user-1"}
	lead.CompanyName = "Acme"
	require.NoError(t, store.Create(lead))
	router := newLeadRouter(new(MockLeadSearcher), store, "user-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/leads/saved/"+lead.ID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, store.leads)
}
