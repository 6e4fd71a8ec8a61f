package solr

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/cdcp/search-api/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:        srv.URL,
		ItemCore:       "mscat",
		CollectionCore: "collection",
		Timeout:        5 * time.Second,
	})
}

func TestSelect_ProxiesParamsAndReturnsBody(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"response":{"numFound":1}}`))
	})

	params := url.Values{"q": {"(psalter)"}, "fq": {`lang_sm:"Latin"`}}
	body, err := c.Select(context.Background(), "mscat", params)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	if gotPath != "/solr/mscat/spell" {
		t.Errorf("path = %q, want /solr/mscat/spell", gotPath)
	}
	if gotQuery.Get("q") != "(psalter)" {
		t.Errorf("q = %q", gotQuery.Get("q"))
	}
	if string(body) != `{"response":{"numFound":1}}` {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestSelect_ConfigurableHandler(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{
		BaseURL:       srv.URL,
		ItemCore:      "mscat",
		SelectHandler: HandlerSelect,
	})

	if _, err := c.Select(context.Background(), "mscat", url.Values{}); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if gotPath != "/solr/mscat/select" {
		t.Errorf("path = %q, want /solr/mscat/select", gotPath)
	}
}

func TestSelect_SolrErrorPropagatesStatusAndMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"responseHeader":{"status":400},"error":{"msg":"undefined field bogus","code":400}}`))
	})

	_, err := c.Select(context.Background(), "mscat", url.Values{})
	if err == nil {
		t.Fatal("expected error")
	}

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Status != 400 {
		t.Errorf("status = %d, want 400", ue.Status)
	}
	if ue.Message != "undefined field bogus" {
		t.Errorf("message = %q", ue.Message)
	}
}

func TestSelect_NonJSONErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>proxy error</html>"))
	})

	_, err := c.Select(context.Background(), "mscat", url.Values{})

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", ue.Status)
	}
}

func TestSelect_Unreachable(t *testing.T) {
	c := NewClient(Config{
		BaseURL:  "http://127.0.0.1:1", // nothing listens here
		ItemCore: "mscat",
		Timeout:  200 * time.Millisecond,
	})

	_, err := c.Select(context.Background(), "mscat", url.Values{})
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestUpdate_PostsDocumentWithMappingParams(t *testing.T) {
	var gotPath, gotContentType string
	var gotQuery url.Values
	var gotBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"responseHeader":{"status":0}}`))
	})

	params := url.Values{"f": {"$FQN:/**", "id:/name/url-slug"}}
	doc := []byte(`{"name":{"url-slug":"hebrew-manuscripts"}}`)

	status, err := c.Update(context.Background(), "collection", params, doc)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if gotPath != "/solr/collection/update/json/docs" {
		t.Errorf("path = %q", gotPath)
	}
	if len(gotQuery["f"]) != 2 {
		t.Errorf("expected two f params, got %v", gotQuery["f"])
	}
	if gotContentType != "application/json; charset=UTF-8" {
		t.Errorf("content-type = %q", gotContentType)
	}
	if string(gotBody) != string(doc) {
		t.Errorf("body = %s", gotBody)
	}
}

func TestDeleteByQuery_SendsDeleteCommand(t *testing.T) {
	var gotPath string
	var gotBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"responseHeader":{"status":0}}`))
	})

	status, err := c.DeleteByQuery(context.Background(), "mscat", `id:"MS-ADD-04004"`)
	if err != nil {
		t.Fatalf("DeleteByQuery: %v", err)
	}

	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if gotPath != "/solr/mscat/update" {
		t.Errorf("path = %q", gotPath)
	}
	want := `{"delete":{"query":"id:\"MS-ADD-04004\""}}`
	if string(gotBody) != want {
		t.Errorf("body = %s, want %s", gotBody, want)
	}
}

func TestPing(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	})

	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if gotPath != "/solr/mscat/admin/ping" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestCoreFor(t *testing.T) {
	c := NewClient(Config{ItemCore: "mscat", CollectionCore: "collection"})

	core, err := c.CoreFor(domain.ResourceItem)
	if err != nil || core != "mscat" {
		t.Errorf("CoreFor(item) = %q, %v", core, err)
	}
	core, err = c.CoreFor(domain.ResourceCollection)
	if err != nil || core != "collection" {
		t.Errorf("CoreFor(collection) = %q, %v", core, err)
	}
	if _, err := c.CoreFor(domain.Resource("page")); !errors.Is(err, domain.ErrUnknownResource) {
		t.Errorf("expected ErrUnknownResource, got %v", err)
	}
}

func TestWaitForReady_Timeout(t *testing.T) {
	c := NewClient(Config{
		BaseURL:  "http://127.0.0.1:1",
		ItemCore: "mscat",
		Timeout:  100 * time.Millisecond,
	})

	err := c.WaitForReady(context.Background(), 700*time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}
