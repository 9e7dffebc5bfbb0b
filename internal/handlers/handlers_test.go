package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"homeservices/internal/apperrors"
	"homeservices/internal/handlers"
	"homeservices/internal/handlers/testutils"
	"homeservices/internal/query"
	"homeservices/models"
)

// MockStorage implements StorageInterface.
type MockStorage struct {
	ListServicesFunc          func(ctx context.Context, p query.Params) ([]models.Service, error)
	ServiceStatsFunc          func(ctx context.Context, p query.Params) (models.ServiceStats, error)
	GetServiceFunc            func(ctx context.Context, id int) (*models.Service, error)
	CreateServiceFunc         func(ctx context.Context, in *models.ServiceInput) (*models.Service, error)
	UpdateServiceFunc         func(ctx context.Context, id int, in *models.ServiceInput) (*models.Service, error)
	MissingServiceIDsFunc     func(ctx context.Context, ids []int) ([]int, error)
	ListAgenciesFunc          func(ctx context.Context, p query.Params) ([]models.Agency, error)
	AgencyStatsFunc           func(ctx context.Context, p query.Params) (models.AgencyStats, error)
	GetAgencyFunc             func(ctx context.Context, id int) (*models.Agency, error)
	CreateAgencyFunc          func(ctx context.Context, in *models.AgencyInput) (*models.Agency, error)
	UpdateAgencyFunc          func(ctx context.Context, id int, in *models.AgencyInput) (*models.Agency, error)
	CreateQuoteFunc           func(ctx context.Context, in *models.QuoteInput) (*models.Quote, error)
	GetQuoteFunc              func(ctx context.Context, id int) (*models.Quote, error)
	CreateContactFunc         func(ctx context.Context, in *models.ContactInput) (*models.Contact, error)
	ListContentBlocksFunc     func(ctx context.Context, blockType string) ([]models.ContentBlock, error)
	GetContentBlockByTypeFunc func(ctx context.Context, blockType string) (*models.ContentBlock, error)

	quotesCreated int
}

var created = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func (m *MockStorage) ListServices(ctx context.Context, p query.Params) ([]models.Service, error) {
	if m.ListServicesFunc != nil {
		return m.ListServicesFunc(ctx, p)
	}
	return []models.Service{{ID: 1, Name: "Ménage", Rating: 4.5, Active: true}}, nil
}

func (m *MockStorage) ServiceStats(ctx context.Context, p query.Params) (models.ServiceStats, error) {
	if m.ServiceStatsFunc != nil {
		return m.ServiceStatsFunc(ctx, p)
	}
	return models.ServiceStats{}, nil
}

func (m *MockStorage) GetService(ctx context.Context, id int) (*models.Service, error) {
	if m.GetServiceFunc != nil {
		return m.GetServiceFunc(ctx, id)
	}
	return &models.Service{ID: id, Name: "Ménage", Description: "Nettoyage", Icon: "broom",
		Duration: "2h", Price: "10 000 FCFA", Rating: 4, Active: true}, nil
}

func (m *MockStorage) CreateService(ctx context.Context, in *models.ServiceInput) (*models.Service, error) {
	if m.CreateServiceFunc != nil {
		return m.CreateServiceFunc(ctx, in)
	}
	return &models.Service{ID: 1, Name: in.Name, Rating: in.Rating, Active: in.IsActive(), CreatedAt: created, UpdatedAt: created}, nil
}

func (m *MockStorage) UpdateService(ctx context.Context, id int, in *models.ServiceInput) (*models.Service, error) {
	if m.UpdateServiceFunc != nil {
		return m.UpdateServiceFunc(ctx, id, in)
	}
	return &models.Service{ID: id, Name: in.Name, Price: in.Price, Active: in.IsActive()}, nil
}

func (m *MockStorage) MissingServiceIDs(ctx context.Context, ids []int) ([]int, error) {
	if m.MissingServiceIDsFunc != nil {
		return m.MissingServiceIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockStorage) ListAgencies(ctx context.Context, p query.Params) ([]models.Agency, error) {
	if m.ListAgenciesFunc != nil {
		return m.ListAgenciesFunc(ctx, p)
	}
	return []models.Agency{}, nil
}

func (m *MockStorage) AgencyStats(ctx context.Context, p query.Params) (models.AgencyStats, error) {
	if m.AgencyStatsFunc != nil {
		return m.AgencyStatsFunc(ctx, p)
	}
	return models.AgencyStats{}, nil
}

func (m *MockStorage) GetAgency(ctx context.Context, id int) (*models.Agency, error) {
	if m.GetAgencyFunc != nil {
		return m.GetAgencyFunc(ctx, id)
	}
	return &models.Agency{ID: id, Name: "Agence Plateau", Description: "desc", City: "Abidjan",
		Services: []models.Service{}, Active: true}, nil
}

func (m *MockStorage) CreateAgency(ctx context.Context, in *models.AgencyInput) (*models.Agency, error) {
	if m.CreateAgencyFunc != nil {
		return m.CreateAgencyFunc(ctx, in)
	}
	return &models.Agency{ID: 1, Name: in.Name, City: in.City, Services: []models.Service{}, Active: true}, nil
}

func (m *MockStorage) UpdateAgency(ctx context.Context, id int, in *models.AgencyInput) (*models.Agency, error) {
	if m.UpdateAgencyFunc != nil {
		return m.UpdateAgencyFunc(ctx, id, in)
	}
	return &models.Agency{ID: id, Name: in.Name, City: in.City, Services: []models.Service{}, Active: in.IsActive()}, nil
}

func (m *MockStorage) CreateQuote(ctx context.Context, in *models.QuoteInput) (*models.Quote, error) {
	m.quotesCreated++
	if m.CreateQuoteFunc != nil {
		return m.CreateQuoteFunc(ctx, in)
	}
	return &models.Quote{ID: 1, Name: in.Name, Email: in.Email, Needs: in.Needs,
		Status: models.QuoteStatusPending, CreatedAt: created, UpdatedAt: created}, nil
}

func (m *MockStorage) ListQuotes(ctx context.Context) ([]models.Quote, error) {
	return []models.Quote{}, nil
}

func (m *MockStorage) GetQuote(ctx context.Context, id int) (*models.Quote, error) {
	if m.GetQuoteFunc != nil {
		return m.GetQuoteFunc(ctx, id)
	}
	return &models.Quote{ID: id, Status: models.QuoteStatusPending}, nil
}

func (m *MockStorage) CreateContact(ctx context.Context, in *models.ContactInput) (*models.Contact, error) {
	if m.CreateContactFunc != nil {
		return m.CreateContactFunc(ctx, in)
	}
	return &models.Contact{ID: 1, Name: in.Name, Email: in.Email, Subject: in.Subject, Message: in.Message}, nil
}

func (m *MockStorage) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return []models.Contact{}, nil
}

func (m *MockStorage) GetContact(ctx context.Context, id int) (*models.Contact, error) {
	return nil, apperrors.NewNotFound("contact not found")
}

func (m *MockStorage) ListContentBlocks(ctx context.Context, blockType string) ([]models.ContentBlock, error) {
	if m.ListContentBlocksFunc != nil {
		return m.ListContentBlocksFunc(ctx, blockType)
	}
	return []models.ContentBlock{}, nil
}

func (m *MockStorage) GetContentBlockByType(ctx context.Context, blockType string) (*models.ContentBlock, error) {
	if m.GetContentBlockByTypeFunc != nil {
		return m.GetContentBlockByTypeFunc(ctx, blockType)
	}
	return nil, apperrors.NewNotFound("content block not found")
}

func do(t *testing.T, h http.HandlerFunc, req *http.Request) (int, string) {
	t.Helper()
	w := httptest.NewRecorder()
	h(w, req)
	res := w.Result()
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(body)
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

const validService = `{"nom":"Ménage","description":"Nettoyage","icone":"broom","duree":"2h","prix":"10 000 FCFA","note":%s}`

func TestPingHandler(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})
	status, body := do(t, handler.PingHandler, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", body)
}

type pingingStore struct {
	MockStorage
	err error
}

func (p *pingingStore) Ping(ctx context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	healthy := handlers.NewHandler(&pingingStore{})
	status, body := do(t, healthy.HealthHandler, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"status":"ok"}`, body)

	down := handlers.NewHandler(&pingingStore{err: errors.New("connection refused")})
	status, body = do(t, down.HealthHandler, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, status)
	require.JSONEq(t, `{"status":"unavailable"}`, body)
}

func TestCreateServiceRatingBounds(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})

	cases := map[string]int{
		"0":    http.StatusCreated,
		"5":    http.StatusCreated,
		"4.5":  http.StatusCreated,
		"-0.1": http.StatusBadRequest,
		"5.01": http.StatusBadRequest,
		"6":    http.StatusBadRequest,
	}
	for rating, want := range cases {
		body := strings.Replace(validService, "%s", rating, 1)
		status, resp := do(t, handler.CreateServiceHandler, jsonRequest(http.MethodPost, "/api/services", body))
		require.Equal(t, want, status, "note=%s: %s", rating, resp)
		if want == http.StatusBadRequest {
			require.Contains(t, resp, `"note"`)
		}
	}
}

func TestCreateServiceMissingFields(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})

	status, body := do(t, handler.CreateServiceHandler, jsonRequest(http.MethodPost, "/api/services", `{"nom":"  "}`))
	require.Equal(t, http.StatusBadRequest, status)

	var fields map[string][]string
	require.NoError(t, json.Unmarshal([]byte(body), &fields))
	require.Equal(t, []string{"This field is required."}, fields["nom"])
	require.Contains(t, fields, "description")
	require.Contains(t, fields, "icone")
}

func TestCreateServiceWrongType(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})

	status, body := do(t, handler.CreateServiceHandler, jsonRequest(http.MethodPost, "/api/services", `{"nom":"x","note":"high"}`))
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body, `"note"`)
	require.Contains(t, body, "Incorrect type")
}

func TestCreateServiceMalformedJSON(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})

	status, body := do(t, handler.CreateServiceHandler, jsonRequest(http.MethodPost, "/api/services", `{"nom":`))
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body, `"detail"`)
	require.Contains(t, body, "JSON parse error")
}

func TestCreateServiceBodyTooLarge(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})

	big := `{"description":"` + strings.Repeat("a", 2<<20) + `"}`
	status, body := do(t, handler.CreateServiceHandler, jsonRequest(http.MethodPost, "/api/services", big))
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body, "too large")
}

func TestListServicesMinRatingParsing(t *testing.T) {
	var got query.Params
	mockStore := &MockStorage{
		ListServicesFunc: func(ctx context.Context, p query.Params) ([]models.Service, error) {
			got = p
			return []models.Service{}, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	status, body := do(t, handler.ListServicesHandler, httptest.NewRequest(http.MethodGet, "/api/services?minRating=3.5", nil))
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `[]`, body)
	require.NotNil(t, got.MinRating)
	require.Equal(t, 3.5, *got.MinRating)

	status, _ = do(t, handler.ListServicesHandler, httptest.NewRequest(http.MethodGet, "/api/services?minRating=abc&limit=x", nil))
	require.Equal(t, http.StatusOK, status)
	require.Nil(t, got.MinRating)
	require.Nil(t, got.Limit)
}

func TestListServicesLimitAndOrdering(t *testing.T) {
	var got query.Params
	mockStore := &MockStorage{
		ListServicesFunc: func(ctx context.Context, p query.Params) ([]models.Service, error) {
			got = p
			return []models.Service{{ID: 3}, {ID: 1}}, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/api/services?limit=2&ordering=-note&minRating=1", nil)
	status, body := do(t, handler.ListServicesHandler, req)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 2, *got.Limit)
	require.Equal(t, []string{"-note"}, got.Ordering)

	var services []models.Service
	require.NoError(t, json.Unmarshal([]byte(body), &services))
	require.Len(t, services, 2)
}

func TestServiceStatsEmptyIsZeros(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})

	status, body := do(t, handler.ServiceStatsHandler, httptest.NewRequest(http.MethodGet, "/api/services/stats?limit=1", nil))
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"total":0,"avg_rating":0,"total_reviews":0}`, body)
}

func TestAgencyStatsEmptyIsZeros(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})

	status, body := do(t, handler.AgencyStatsHandler, httptest.NewRequest(http.MethodGet, "/api/agencies/stats", nil))
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"total":0,"avg_rating":0,"total_reviews":0,"total_clients":0,"total_experience":0}`, body)
}

func TestListAgenciesServiceFilter(t *testing.T) {
	var got query.Params
	mockStore := &MockStorage{
		ListAgenciesFunc: func(ctx context.Context, p query.Params) ([]models.Agency, error) {
			got = p
			return []models.Agency{
				{ID: 1, Name: "Agence Plateau", Services: []models.Service{{ID: 2, Name: "Jardinage"}}},
				{ID: 2, Name: "Agence Cocody", Services: []models.Service{{ID: 2, Name: "Jardinage"}}},
			}, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	status, body := do(t, handler.ListAgenciesHandler, httptest.NewRequest(http.MethodGet, "/api/agencies?service=Jardinage&ville=Abidjan", nil))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Jardinage", got.ServiceName)
	require.Equal(t, "Abidjan", *got.City)

	var agencies []models.Agency
	require.NoError(t, json.Unmarshal([]byte(body), &agencies))
	require.Len(t, agencies, 2)
}

func TestGetServiceNonNumericID(t *testing.T) {
	called := false
	mockStore := &MockStorage{
		GetServiceFunc: func(ctx context.Context, id int) (*models.Service, error) {
			called = true
			return nil, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	req := testutils.WithChiURLParams(httptest.NewRequest(http.MethodGet, "/api/services/abc", nil), map[string]string{"id": "abc"})
	status, body := do(t, handler.GetServiceHandler, req)
	require.Equal(t, http.StatusNotFound, status)
	require.JSONEq(t, `{"detail":"Not found."}`, body)
	require.False(t, called)
}

func TestGetServiceNotFound(t *testing.T) {
	mockStore := &MockStorage{
		GetServiceFunc: func(ctx context.Context, id int) (*models.Service, error) {
			return nil, apperrors.NewNotFound("service not found")
		},
	}
	handler := handlers.NewHandler(mockStore)

	req := testutils.WithChiURLParams(httptest.NewRequest(http.MethodGet, "/api/services/7", nil), map[string]string{"id": "7"})
	status, _ := do(t, handler.GetServiceHandler, req)
	require.Equal(t, http.StatusNotFound, status)
}

func TestPatchServiceMergesStoredValues(t *testing.T) {
	var got *models.ServiceInput
	mockStore := &MockStorage{
		UpdateServiceFunc: func(ctx context.Context, id int, in *models.ServiceInput) (*models.Service, error) {
			got = in
			return &models.Service{ID: id, Name: in.Name, Price: in.Price}, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	req := jsonRequest(http.MethodPatch, "/api/services/4", `{"prix":"15 000 FCFA","actif":false}`)
	req = testutils.WithChiURLParams(req, map[string]string{"id": "4"})
	status, body := do(t, handler.UpdateServiceHandler, req)
	require.Equal(t, http.StatusOK, status, body)
	require.Equal(t, "Ménage", got.Name)
	require.Equal(t, "15 000 FCFA", got.Price)
	require.Equal(t, 4.0, got.Rating)
	require.False(t, got.IsActive())
}

func TestPutServiceRequiresFullPayload(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})

	req := jsonRequest(http.MethodPut, "/api/services/4", `{"prix":"15 000 FCFA"}`)
	req = testutils.WithChiURLParams(req, map[string]string{"id": "4"})
	status, body := do(t, handler.UpdateServiceHandler, req)
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body, `"nom"`)
}

func TestCreateAgencyUnknownServiceIDs(t *testing.T) {
	created := false
	mockStore := &MockStorage{
		MissingServiceIDsFunc: func(ctx context.Context, ids []int) ([]int, error) {
			require.Equal(t, []int{1, 99}, ids)
			return []int{99}, nil
		},
		CreateAgencyFunc: func(ctx context.Context, in *models.AgencyInput) (*models.Agency, error) {
			created = true
			return nil, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	body := `{"nom":"Agence Yopougon","description":"desc","ville":"Abidjan","services_ids":[1,99,1]}`
	status, resp := do(t, handler.CreateAgencyHandler, jsonRequest(http.MethodPost, "/api/agencies", body))
	require.Equal(t, http.StatusBadRequest, status)
	require.JSONEq(t, `{"services_ids":["Invalid pk \"99\" - object does not exist."]}`, resp)
	require.False(t, created)
}

func TestCreateAgencyOptionalFields(t *testing.T) {
	var got *models.AgencyInput
	mockStore := &MockStorage{
		CreateAgencyFunc: func(ctx context.Context, in *models.AgencyInput) (*models.Agency, error) {
			got = in
			return &models.Agency{ID: 3, Name: in.Name, City: in.City, Services: []models.Service{}}, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	body := `{"nom":"Agence Bouaké","description":"desc","ville":"Bouaké","email":"  ","services_ids":[2]}`
	status, resp := do(t, handler.CreateAgencyHandler, jsonRequest(http.MethodPost, "/api/agencies", body))
	require.Equal(t, http.StatusCreated, status, resp)
	require.Nil(t, got.Email)
	require.Nil(t, got.Rating)
	require.Equal(t, []int{2}, got.UniqueServiceIDs())
}

func TestPatchAgencyKeepsLinksWhenIDsAbsent(t *testing.T) {
	var got *models.AgencyInput
	mockStore := &MockStorage{
		UpdateAgencyFunc: func(ctx context.Context, id int, in *models.AgencyInput) (*models.Agency, error) {
			got = in
			return &models.Agency{ID: id, Name: in.Name, Services: []models.Service{}}, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	req := jsonRequest(http.MethodPatch, "/api/agencies/2", `{"ville":"Yamoussoukro"}`)
	req = testutils.WithChiURLParams(req, map[string]string{"id": "2"})
	status, _ := do(t, handler.UpdateAgencyHandler, req)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Agence Plateau", got.Name)
	require.Equal(t, "Yamoussoukro", got.City)
	require.Nil(t, got.ServiceIDs)
}

func TestCreateQuoteWithoutEmail(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	body := `{"localisation":"Abidjan","service":"Ménage","destinataire":"moi","nom":"Awa","message":"Bonjour"}`
	status, resp := do(t, handler.CreateQuoteHandler, jsonRequest(http.MethodPost, "/api/quotes", body))
	require.Equal(t, http.StatusBadRequest, status)
	require.JSONEq(t, `{"email":["This field is required."]}`, resp)
	require.Zero(t, mockStore.quotesCreated)
}

func TestCreateQuoteIgnoresClientStatus(t *testing.T) {
	mockStore := &MockStorage{}
	handler := handlers.NewHandler(mockStore)

	body := `{"localisation":"Abidjan","service":"Ménage","destinataire":"moi","nom":"Awa",
		"email":"awa@example.com","message":"Bonjour","statut":"traite","besoins":["repas"],"extra":1}`
	status, resp := do(t, handler.CreateQuoteHandler, jsonRequest(http.MethodPost, "/api/quotes", body))
	require.Equal(t, http.StatusCreated, status, resp)
	require.Equal(t, 1, mockStore.quotesCreated)

	var q models.Quote
	require.NoError(t, json.Unmarshal([]byte(resp), &q))
	require.Equal(t, models.QuoteStatusPending, q.Status)
	require.Equal(t, []string{"repas"}, []string(q.Needs))
	require.NotZero(t, q.ID)
}

func TestCreateContactInvalidEmail(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})

	body := `{"nom":"Koffi","email":"not-an-email","sujet":"Info","message":"Salut"}`
	status, resp := do(t, handler.CreateContactHandler, jsonRequest(http.MethodPost, "/api/contact", body))
	require.Equal(t, http.StatusBadRequest, status)
	require.JSONEq(t, `{"email":["Enter a valid email address."]}`, resp)
}

func TestCreateContact(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})

	body := `{"nom":"Koffi","email":"k@example.com","sujet":"Info","message":"Salut","lu":true}`
	status, resp := do(t, handler.CreateContactHandler, jsonRequest(http.MethodPost, "/api/contact", body))
	require.Equal(t, http.StatusCreated, status)
	require.Contains(t, resp, `"lu":false`)
}

func TestGetContactMissing(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})

	req := testutils.WithChiURLParams(httptest.NewRequest(http.MethodGet, "/api/contact/3", nil), map[string]string{"id": "3"})
	status, _ := do(t, handler.GetContactHandler, req)
	require.Equal(t, http.StatusNotFound, status)
}

func TestContentByType(t *testing.T) {
	blocks := []models.ContentBlock{
		{ID: 1, Type: "hero", Order: 2, Active: true},
		{ID: 2, Type: "hero", Order: 0, Active: false},
		{ID: 3, Type: "hero", Order: 1, Active: true},
		{ID: 4, Type: "banner", Order: 0, Active: true},
	}
	var asked string
	mockStore := &MockStorage{
		ListContentBlocksFunc: func(ctx context.Context, blockType string) ([]models.ContentBlock, error) {
			asked = blockType
			var out []models.ContentBlock
			for _, order := range []int{0, 1, 2} {
				for _, b := range blocks {
					if b.Active && b.Type == blockType && b.Order == order {
						out = append(out, b)
					}
				}
			}
			return out, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	status, body := do(t, handler.ContentByTypeHandler, httptest.NewRequest(http.MethodGet, "/api/content/by_type?type=hero", nil))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "hero", asked)

	var got []models.ContentBlock
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	require.Len(t, got, 2)
	require.Equal(t, 3, got[0].ID)
	require.Equal(t, 1, got[1].ID)
}

func TestContentByTypeMissingParam(t *testing.T) {
	mockStore := &MockStorage{
		ListContentBlocksFunc: func(ctx context.Context, blockType string) ([]models.ContentBlock, error) {
			t.Fatal("store must not be queried without a type")
			return nil, nil
		},
	}
	handler := handlers.NewHandler(mockStore)

	status, body := do(t, handler.ContentByTypeHandler, httptest.NewRequest(http.MethodGet, "/api/content/by_type", nil))
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `[]`, body)
}

func TestContentTypeNotFound(t *testing.T) {
	handler := handlers.NewHandler(&MockStorage{})

	req := testutils.WithChiURLParams(httptest.NewRequest(http.MethodGet, "/api/content/footer", nil), map[string]string{"type": "footer"})
	status, body := do(t, handler.ContentTypeHandler, req)
	require.Equal(t, http.StatusNotFound, status)
	require.JSONEq(t, `{"detail":"Not found."}`, body)
}

func TestStorageFailureIsGeneric500(t *testing.T) {
	mockStore := &MockStorage{
		ListAgenciesFunc: func(ctx context.Context, p query.Params) ([]models.Agency, error) {
			return nil, apperrors.NewInternal("list agencies", errors.New("pq: password authentication failed"))
		},
	}
	handler := handlers.NewHandler(mockStore)

	status, body := do(t, handler.ListAgenciesHandler, httptest.NewRequest(http.MethodGet, "/api/agencies", nil))
	require.Equal(t, http.StatusInternalServerError, status)
	require.JSONEq(t, `{"detail":"A server error occurred."}`, body)
	require.NotContains(t, body, "password")
}
