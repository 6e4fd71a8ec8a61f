// Package chi implements the HTTP transport on top of the generated
// oapi-codegen chi server.
package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cdcp/search-api/internal/domain"
	gen "github.com/cdcp/search-api/internal/transport/generated"
	healthuc "github.com/cdcp/search-api/internal/usecase/health"
	indexuc "github.com/cdcp/search-api/internal/usecase/index"
	searchuc "github.com/cdcp/search-api/internal/usecase/search"
)

// maxDocumentSize bounds index request bodies.
const maxDocumentSize = 10 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements generated.ServerInterface for the oapi-codegen chi router.
type Server struct {
	gen.Unimplemented
	search        *searchuc.Service
	index         *indexuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ gen.ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	index *indexuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search: search,
		index:  index,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		upstreamErrorHandler,
		sentinelHandler(domain.ErrInvalidDocument, http.StatusBadRequest, gen.ErrorResponseCodeInvalidDocument),
		sentinelHandler(domain.ErrUnknownResource,
			http.StatusInternalServerError, gen.ErrorResponseCodeUnknownResource),
		sentinelHandler(domain.ErrUpstreamUnavailable,
			http.StatusBadGateway, gen.ErrorResponseCodeUpstreamUnavailable),
	}
	return s
}

// GetItems handles GET /items.
//
// The full raw query is handed to the search service: the item search
// accepts an open set of facet parameters on top of the declared ones,
// and the service applies the allow-list.
func (s *Server) GetItems(w http.ResponseWriter, r *http.Request, _ gen.GetItemsParams) {
	body, err := s.search.Items(r.Context(), r.URL.Query())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSolrBody(w, body)
}

// GetCollections handles GET /collections.
func (s *Server) GetCollections(w http.ResponseWriter, r *http.Request, _ gen.GetCollectionsParams) {
	body, err := s.search.Collections(r.Context(), r.URL.Query())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSolrBody(w, body)
}

// GetSummary handles GET /summary.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request, _ gen.GetSummaryParams) {
	body, err := s.search.Summary(r.Context(), r.URL.Query())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeSolrBody(w, body)
}

// PutItem handles PUT /item.
func (s *Server) PutItem(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "read request body: "+err.Error())
		return
	}

	status, err := s.index.PutItem(r.Context(), doc)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, gen.IndexResponse{Status: status})
}

// PutCollection handles PUT /collection.
func (s *Server) PutCollection(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "read request body: "+err.Error())
		return
	}

	status, err := s.index.PutCollection(r.Context(), doc)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, gen.IndexResponse{Status: status})
}

// DeleteItem handles DELETE /item/{fileId}.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request, fileID string) {
	status, err := s.index.Delete(r.Context(), domain.ResourceItem, fileID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, gen.IndexResponse{Status: status})
}

// DeleteCollection handles DELETE /collection/{fileId}.
func (s *Server) DeleteCollection(w http.ResponseWriter, r *http.Request, fileID string) {
	status, err := s.index.Delete(r.Context(), domain.ResourceCollection, fileID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, gen.IndexResponse{Status: status})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]gen.HealthResponseChecks)
	for k, v := range report.Checks {
		checks[k] = gen.HealthResponseChecks(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, gen.HealthResponse{
		Status: gen.HealthResponseStatus(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func readDocument(r *http.Request) ([]byte, error) {
	defer func() { _ = r.Body.Close() }()
	return io.ReadAll(io.LimitReader(r.Body, maxDocumentSize))
}

// writeSolrBody relays a Solr response verbatim. Bodies coming out of the
// search service are already JSON.
func writeSolrBody(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorResponseCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidDocument,
		domain.ErrUnknownResource,
		domain.ErrUpstreamUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code gen.ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// upstreamErrorHandler relays the status and message Solr reported.
func upstreamErrorHandler(w http.ResponseWriter, err error, _ string) bool {
	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		return false
	}
	status := ue.Status
	if status < 400 || status > 599 {
		status = http.StatusBadGateway
	}
	writeError(w, status, gen.ErrorResponseCodeUpstreamError, ue.Message)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Warn("domain error", zap.Error(err), zap.String("path", r.URL.Path))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, gen.ErrorResponseCodeInternalError, "internal error")
}
