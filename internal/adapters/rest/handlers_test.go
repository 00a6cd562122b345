package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"listing-service/internal/adapters/memory"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopEventPublisher struct{}

func (noopEventPublisher) Publish(ctx context.Context, event domain.ListingEvent) error { return nil }

// newTestRouter wires the full API over the in-memory backend with auth
// disabled, the way a local development instance runs.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	storage := memory.NewListingStorage(memory.SeedListings())
	sessions := memory.NewSessionStore()
	publisher := noopEventPublisher{}

	listingsHandler := NewListingsHandler(
		usecase.NewFindListingsUseCase(storage),
		usecase.NewGetListingUseCase(storage),
		usecase.NewAddListingUseCase(storage, publisher),
		usecase.NewUpdateListingUseCase(storage, publisher),
		usecase.NewAttachAgentUseCase(storage),
	)
	sessionHandler := NewSessionHandler(usecase.NewSessionFiltersUseCase(sessions, storage))
	viewsHandler := NewViewsHandler(
		usecase.NewMapViewUseCase(storage),
		usecase.NewCompanyListingsUseCase(storage),
	)
	authMiddleware := NewAuthMiddleware(nil, false)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/listings", listingsHandler.FindListings)
		r.Get("/listings/{listingID}", listingsHandler.GetListing)
		r.Get("/companies/{companySlug}/listings", viewsHandler.CompanyListings)
		r.Get("/map/pins", viewsHandler.MapPins)

		r.Get("/session/filters", sessionHandler.GetFilters)
		r.Put("/session/filters", sessionHandler.ReplaceFilters)
		r.Delete("/session/filters/{field}", sessionHandler.ClearFilter)
		r.Get("/session/listings", sessionHandler.SessionListings)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(authMiddleware.RequireAnyRole(mutationRoles...))

			r.Post("/listings", listingsHandler.AddListing)
			r.Put("/listings/{listingID}", listingsHandler.UpdateListing)
			r.Post("/listings/{listingID}/agents", listingsHandler.AttachAgent)
		})
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, target string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestFindListingsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/listings", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listings []domain.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	assert.Len(t, listings, 6)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/listings?status=available&bedrooms=4", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "Residencial Torre Privilege", listings[0].Title)
}

func TestFindListingsRejectsMalformedNumbers(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/listings?minPrice=abc", nil, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "minPrice")
}

func TestGetListingEndpoint(t *testing.T) {
	router := newTestRouter(t)
	seedID := memory.SeedListings()[0].ID

	rec := doJSON(t, router, http.MethodGet, "/api/v1/listings/"+seedID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listing domain.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, seedID, listing.ID)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/listings/no-such-id", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddListingEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]interface{}{
		"title": "Posted Flat", "price": 123000,
		"type": "sale", "propertyType": "apartment",
		"bedrooms": 2, "bathrooms": 1, "area": 55,
		"location": map[string]interface{}{"address": "Rua B", "city": "Mutum", "state": "MT"},
		"company":  "Prime", "agent": "Ana", "status": "available",
	}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/listings", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Posted Flat", created.Title)

	// The new listing is immediately visible.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/listings/"+created.ID, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddListingValidation(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]interface{}{"title": "", "price": 10}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/listings", body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateListingEndpoint(t *testing.T) {
	router := newTestRouter(t)
	seed := memory.SeedListings()[0]

	body := map[string]interface{}{
		"title": "Renamed Flat", "price": 500000,
		"type": "sale", "propertyType": "apartment",
		"bedrooms": 3, "bathrooms": 2, "area": 85,
		"location": map[string]interface{}{"address": "Rua C", "city": "Mutum", "state": "MT"},
		"company":  "Prime", "agent": "Ana", "status": "reserved",
	}

	rec := doJSON(t, router, http.MethodPut, "/api/v1/listings/"+seed.ID, body, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, seed.ID, updated.ID)
	assert.Equal(t, "Renamed Flat", updated.Title)
	assert.Equal(t, seed.CreatedAt, updated.CreatedAt)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/listings/no-such-id", body, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttachAgentEndpoint(t *testing.T) {
	router := newTestRouter(t)
	seedID := memory.SeedListings()[3].ID

	body := map[string]interface{}{"id": "12", "name": "Maria Extra", "isActive": true}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/listings/"+seedID+"/agents", body, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/listings/"+seedID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listing domain.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Agents, 1)
	assert.Equal(t, "Maria Extra", listing.Agents[0].Name)
}

func TestSessionFiltersEndpoints(t *testing.T) {
	router := newTestRouter(t)
	headers := map[string]string{"X-Session-ID": "s1"}

	// Missing session header is rejected.
	rec := doJSON(t, router, http.MethodGet, "/api/v1/session/filters", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Fresh session has empty filters and the full view.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/session/filters", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "{}", rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/session/listings", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	var listings []domain.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	assert.Len(t, listings, 6)

	// Install a filter and observe the narrowed view.
	rec = doJSON(t, router, http.MethodPut, "/api/v1/session/filters",
		map[string]interface{}{"type": "rent"}, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/session/listings", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "Apartamento Vista Vale", listings[0].Title)

	// Clear the field; the full view comes back.
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/session/filters/type", nil, headers)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/session/listings", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	assert.Len(t, listings, 6)
}

func TestSessionFiltersRejectInvalidState(t *testing.T) {
	router := newTestRouter(t)
	headers := map[string]string{"X-Session-ID": "s1"}

	rec := doJSON(t, router, http.MethodPut, "/api/v1/session/filters",
		map[string]interface{}{"minPrice": -10}, headers)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/session/filters/bogus", nil, headers)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompanyListingsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/companies/grupo-incorporador-sc/listings", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listings []domain.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "Grupo Incorporador SC", listings[0].Company)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/companies/nobody/listings", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestMapPinsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/map/pins?zoom=14", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var pins []domain.MapPin
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pins))
	require.Len(t, pins, 6)
	assert.Equal(t, 1, pins[0].Index)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/map/pins?zoom=oops", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/map/pins?zoom=14&status=reserved", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pins))
	assert.Len(t, pins, 1)
}
