package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"postcraft/internal/adapter/memory"
	"postcraft/internal/adapter/usecase"
	"postcraft/internal/config/configs"
	"postcraft/internal/core/port"
	"postcraft/internal/core/port/mocks"
	"postcraft/internal/metrics"
)

type testServer struct {
	*httptest.Server
	gen *mocks.MockPostGenerator
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	gen := mocks.NewMockPostGenerator(t)
	m := metrics.New()
	campaigns := usecase.NewCampaignUseCase(store, store, store, nil)
	uploads := usecase.NewUploadUseCase(store, configs.Upload{
		PublicURL: "http://uploads.test",
		TTL:       time.Minute,
		MaxBytes:  16,
	}, nil)
	h := NewHandler(Services{
		Companies:      usecase.NewCompanyUseCase(store, nil),
		Campaigns:      campaigns,
		Generation:     usecase.NewGenerationUseCase(campaigns, store, gen, nil, m),
		Uploads:        uploads,
		MaxUploadBytes: uploads.MaxBytes(),
	}, nil, m)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, gen: gen}
}

func (s *testServer) do(t *testing.T, method, path, user string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		rd = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.URL+path, rd)
	require.NoError(t, err)
	if user != "" {
		req.Header.Set(PrincipalHeader, user)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCampaignWorkflow(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/v1/companies", "", companyRequest{Name: "Acme"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/v1/companies", "u1", companyRequest{Name: "Acme"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	company := decode[createdResponse](t, resp)

	resp = s.do(t, http.MethodPost, "/api/v1/campaigns", "u1", campaignRequest{
		Name:         "Launch",
		CompanyID:    company.ID,
		Instructions: "be bold",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	campaign := decode[createdResponse](t, resp)
	base := "/api/v1/campaigns/" + campaign.ID

	s.gen.EXPECT().GenerateCandidates(mock.Anything, port.GenerationRequest{
		Layout:       "default",
		Instructions: "be bold",
	}).Return([]string{"p0", "p1", "p2", "p3", "p4"}, nil).Once()

	resp = s.do(t, http.MethodPost, base+"/generate", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ps := decode[postSetResponse](t, resp)
	require.Len(t, ps.Posts, 5)

	resp = s.do(t, http.MethodPut, base+"/posts/2/edit-prompt", "u1", editPromptRequest{EditPrompt: "shorter"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.do(t, http.MethodPut, base+"/posts/x/edit-prompt", "u1", editPromptRequest{EditPrompt: "shorter"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodPut, base+"/selection", "u1", selectionRequest{SelectedPostIndices: []int{7}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodPut, base+"/selection", "u1", selectionRequest{SelectedPostIndices: []int{1, 3}})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.do(t, http.MethodGet, base, "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[campaignResponse](t, resp)
	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, []int{1, 3}, got.SelectedPostIndices)
	require.Len(t, got.Posts, 5)
	assert.Equal(t, "shorter", got.Posts[2].EditPrompt)

	resp = s.do(t, http.MethodGet, base+"/export", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	text, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "p1\n\np3", string(text))

	resp = s.do(t, http.MethodPost, base+"/generate", "u1", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = s.do(t, http.MethodGet, base, "u2", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/v1/campaigns", "u2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]campaignResponse](t, resp))

	resp = s.do(t, http.MethodGet, "/api/v1/companies/"+company.ID, "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Acme", decode[companyResponse](t, resp).Name)
}

func TestGenerateWithoutKeyIsServerError(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/v1/companies", "u1", companyRequest{Name: "Acme"})
	company := decode[createdResponse](t, resp)
	resp = s.do(t, http.MethodPost, "/api/v1/campaigns", "u1", campaignRequest{Name: "Launch", CompanyID: company.ID})
	campaign := decode[createdResponse](t, resp)

	s.gen.EXPECT().GenerateCandidates(mock.Anything, mock.Anything).Return(nil, port.ErrConfiguration).Once()

	resp = s.do(t, http.MethodPost, "/api/v1/campaigns/"+campaign.ID+"/generate", "u1", generateRequest{Layout: "grid"})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "service is not configured", decode[errorResponse](t, resp).Error)
}

func TestUploadFlow(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/v1/uploads", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	issued := decode[uploadURLResponse](t, resp)
	require.True(t, strings.HasPrefix(issued.UploadURL, "http://uploads.test/api/v1/uploads/"))

	u, err := url.Parse(issued.UploadURL)
	require.NoError(t, err)

	resp = s.do(t, http.MethodPost, u.Path, "", []byte("tiny"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stored := decode[uploadResponse](t, resp)

	resp = s.do(t, http.MethodPost, u.Path, "", []byte("tiny"))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/v1/files/"+stored.StorageID, "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "tiny", string(data))

	resp = s.do(t, http.MethodGet, "/api/v1/files/"+stored.StorageID, "u2", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/v1/uploads", "u1", nil)
	issued = decode[uploadURLResponse](t, resp)
	u, err = url.Parse(issued.UploadURL)
	require.NoError(t, err)
	resp = s.do(t, http.MethodPost, u.Path, "", []byte(strings.Repeat("x", 32)))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEmptySelectionIsReported(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/v1/companies", "u1", companyRequest{Name: "Acme"})
	company := decode[createdResponse](t, resp)
	resp = s.do(t, http.MethodPost, "/api/v1/campaigns", "u1", campaignRequest{Name: "Launch", CompanyID: company.ID})
	campaign := decode[createdResponse](t, resp)
	base := "/api/v1/campaigns/" + campaign.ID

	resp = s.do(t, http.MethodGet, base, "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var draft map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&draft))
	assert.Equal(t, "null", string(draft["selectedPostIndices"]))

	s.gen.EXPECT().GenerateCandidates(mock.Anything, mock.Anything).
		Return([]string{"p0", "p1", "p2", "p3", "p4"}, nil).Once()
	resp = s.do(t, http.MethodPost, base+"/generate", "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(t, http.MethodPut, base+"/selection", "u1", selectionRequest{SelectedPostIndices: []int{}})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.do(t, http.MethodGet, base, "u1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var completed map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&completed))
	assert.Equal(t, `"completed"`, string(completed["status"]))
	assert.Equal(t, "[]", string(completed["selectedPostIndices"]))
}
