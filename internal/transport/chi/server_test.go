package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/cdcp/search-api/internal/domain"
	"github.com/cdcp/search-api/internal/domain/query"
	gen "github.com/cdcp/search-api/internal/transport/generated"
	healthuc "github.com/cdcp/search-api/internal/usecase/health"
	indexuc "github.com/cdcp/search-api/internal/usecase/index"
	searchuc "github.com/cdcp/search-api/internal/usecase/search"
)

type mockRepo struct {
	body       []byte
	err        error
	lastCore   string
	lastParams url.Values
}

func (m *mockRepo) Select(_ context.Context, core string, params url.Values) ([]byte, error) {
	m.lastCore = core
	m.lastParams = params
	if m.err != nil {
		return nil, m.err
	}
	return m.body, nil
}

type mockCores struct{}

func (mockCores) CoreFor(r domain.Resource) (string, error) {
	switch r {
	case domain.ResourceItem:
		return "mscat", nil
	case domain.ResourceCollection:
		return "collection", nil
	}
	return "", domain.ErrUnknownResource
}

type mockSolrWriter struct {
	status    int
	err       error
	lastCore  string
	lastQuery string
	lastDoc   []byte
}

func (m *mockSolrWriter) CoreFor(r domain.Resource) (string, error) {
	return mockCores{}.CoreFor(r)
}

func (m *mockSolrWriter) Update(_ context.Context, core string, _ url.Values, doc []byte) (int, error) {
	m.lastCore = core
	m.lastDoc = doc
	return m.status, m.err
}

func (m *mockSolrWriter) DeleteByQuery(_ context.Context, core, q string) (int, error) {
	m.lastCore = core
	m.lastQuery = q
	return m.status, m.err
}

type mockPinger struct{ err error }

func (m mockPinger) Ping(context.Context) error { return m.err }

func newTestHandler(t *testing.T, repo *mockRepo, writer *mockSolrWriter, solrUp bool) http.Handler {
	t.Helper()

	translator := query.NewTranslator(20, query.DefaultAllowedFacets)
	searchSvc := searchuc.New(repo, mockCores{}, translator)

	var pingErr error
	if !solrUp {
		pingErr = domain.ErrUpstreamUnavailable
	}
	healthSvc := healthuc.New(mockPinger{err: pingErr}, nil)

	srv := NewServer(searchSvc, indexuc.New(writer), healthSvc, zap.NewNop())
	return gen.Handler(srv)
}

func TestGetItems_ProxiesSolrBody(t *testing.T) {
	repo := &mockRepo{body: []byte(`{"response":{"docs":[{"id":"1"}]}}`)}
	handler := newTestHandler(t, repo, &mockSolrWriter{status: 200}, true)

	req := httptest.NewRequest("GET", "/items?keyword=alchemy", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}
	if rr.Body.String() != `{"response":{"docs":[{"id":"1"}]}}` {
		t.Errorf("body not relayed verbatim: %s", rr.Body.String())
	}
	if repo.lastCore != "mscat" {
		t.Errorf("core: got %q, want mscat", repo.lastCore)
	}
	if got := repo.lastParams.Get("q"); got != "(alchemy)" {
		t.Errorf("translated q: got %q, want (alchemy)", got)
	}
}

func TestGetCollections_UsesCollectionCore(t *testing.T) {
	repo := &mockRepo{body: []byte(`{}`)}
	handler := newTestHandler(t, repo, &mockSolrWriter{status: 200}, true)

	req := httptest.NewRequest("GET", "/collections?q=maps", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if repo.lastCore != "collection" {
		t.Errorf("core: got %q, want collection", repo.lastCore)
	}
}

func TestGetItems_UpstreamErrorRelayed(t *testing.T) {
	repo := &mockRepo{err: domain.NewUpstreamError(400, "undefined field bogus_t")}
	handler := newTestHandler(t, repo, &mockSolrWriter{status: 200}, true)

	req := httptest.NewRequest("GET", "/items?keyword=x", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}

	var errResp gen.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Code != gen.ErrorResponseCodeUpstreamError {
		t.Errorf("code: got %s, want %s", errResp.Code, gen.ErrorResponseCodeUpstreamError)
	}
	if errResp.Message != "undefined field bogus_t" {
		t.Errorf("message: got %q", errResp.Message)
	}
}

func TestGetItems_SolrUnreachable_502(t *testing.T) {
	repo := &mockRepo{err: domain.ErrUpstreamUnavailable}
	handler := newTestHandler(t, repo, &mockSolrWriter{status: 200}, true)

	req := httptest.NewRequest("GET", "/items", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadGateway)
	}

	var errResp gen.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Code != gen.ErrorResponseCodeUpstreamUnavailable {
		t.Errorf("code: got %s, want %s", errResp.Code, gen.ErrorResponseCodeUpstreamUnavailable)
	}
}

func TestPutItem_ForwardsDocument(t *testing.T) {
	writer := &mockSolrWriter{status: 200}
	handler := newTestHandler(t, &mockRepo{body: []byte(`{}`)}, writer, true)

	req := httptest.NewRequest("PUT", "/item", strings.NewReader(`{"id":"ms-123","ms_title_t":"Bestiary"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	if writer.lastCore != "mscat" {
		t.Errorf("core: got %q, want mscat", writer.lastCore)
	}

	var resp gen.IndexResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != 200 {
		t.Errorf("index status: got %d, want 200", resp.Status)
	}
}

func TestPutItem_MissingID_400(t *testing.T) {
	handler := newTestHandler(t, &mockRepo{}, &mockSolrWriter{status: 200}, true)

	req := httptest.NewRequest("PUT", "/item", strings.NewReader(`{"ms_title_t":"no id"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}

	var errResp gen.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Code != gen.ErrorResponseCodeInvalidDocument {
		t.Errorf("code: got %s, want %s", errResp.Code, gen.ErrorResponseCodeInvalidDocument)
	}
}

func TestPutCollection_MissingSlug_400(t *testing.T) {
	handler := newTestHandler(t, &mockRepo{}, &mockSolrWriter{status: 200}, true)

	req := httptest.NewRequest("PUT", "/collection", strings.NewReader(`{"name":{}}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestDeleteItem_BuildsIDQuery(t *testing.T) {
	writer := &mockSolrWriter{status: 200}
	handler := newTestHandler(t, &mockRepo{}, writer, true)

	req := httptest.NewRequest("DELETE", "/item/ms-123", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if writer.lastCore != "mscat" {
		t.Errorf("core: got %q, want mscat", writer.lastCore)
	}
	if writer.lastQuery != `id:"ms-123"` {
		t.Errorf("delete query: got %q", writer.lastQuery)
	}
}

func TestDeleteCollection_UsesCollectionCore(t *testing.T) {
	writer := &mockSolrWriter{status: 200}
	handler := newTestHandler(t, &mockRepo{}, writer, true)

	req := httptest.NewRequest("DELETE", "/collection/ms-collection", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if writer.lastCore != "collection" {
		t.Errorf("core: got %q, want collection", writer.lastCore)
	}
}

func TestHealthCheck_Healthy_200(t *testing.T) {
	handler := newTestHandler(t, &mockRepo{}, &mockSolrWriter{}, true)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}

	var resp gen.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != gen.HealthResponseStatusOk {
		t.Errorf("health status: got %s, want ok", resp.Status)
	}
	if resp.Checks["solr"] != gen.HealthResponseChecksOk {
		t.Errorf("solr check: got %s, want ok", resp.Checks["solr"])
	}
}

func TestHealthCheck_SolrDown_503(t *testing.T) {
	handler := newTestHandler(t, &mockRepo{}, &mockSolrWriter{}, false)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}

	var resp gen.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != gen.HealthResponseStatusDegraded {
		t.Errorf("health status: got %s, want degraded", resp.Status)
	}
}

func TestGetItems_FacetParamsReachTranslator(t *testing.T) {
	repo := &mockRepo{body: []byte(`{}`)}
	handler := newTestHandler(t, repo, &mockSolrWriter{}, true)

	req := httptest.NewRequest("GET", "/items?lang_sm=Latin", http.NoBody)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	found := false
	for _, fq := range repo.lastParams["fq"] {
		if fq == `lang_sm:"Latin"` {
			found = true
		}
	}
	if !found {
		t.Errorf("facet fq missing, got %v", repo.lastParams["fq"])
	}
}
