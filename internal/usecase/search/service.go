// Package search implements the catalogue search use cases: item search,
// collection search and the facet summary view.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/cdcp/search-api/internal/domain"
	"github.com/cdcp/search-api/internal/domain/query"
)

// Site parameters accepted by the item search besides the facet fields.
var itemParams = []string{"sort", "page", "rows", "keyword", "ms_title_t", "name_t"}

// Service translates site searches and proxies them to Solr.
type Service struct {
	repo          Repository
	cores         CoreResolver
	translator    *query.Translator
	allowedFacets []string
	allowedRows   map[int]struct{}
	defaultRows   int
}

// New creates a search service with the default facet allow-list and
// row counts of 8 and 20.
func New(repo Repository, cores CoreResolver, translator *query.Translator) *Service {
	return &Service{
		repo:          repo,
		cores:         cores,
		translator:    translator,
		allowedFacets: query.DefaultAllowedFacets,
		allowedRows:   map[int]struct{}{8: {}, 20: {}},
		defaultRows:   20,
	}
}

// WithRows overrides the allowed row counts. The first entry is the default.
func (s *Service) WithRows(allowed []int) *Service {
	if len(allowed) == 0 {
		return s
	}
	rows := make(map[int]struct{}, len(allowed))
	for _, r := range allowed {
		rows[r] = struct{}{}
	}
	s.allowedRows = rows
	s.defaultRows = allowed[0]
	return s
}

// Items searches the item core. Only the known site parameters and the
// facet allow-list are taken from params; everything else is dropped.
func (s *Service) Items(ctx context.Context, params url.Values) ([]byte, error) {
	filtered := url.Values{}
	for _, k := range itemParams {
		if vs, ok := params[k]; ok {
			filtered[k] = vs
		}
	}
	for _, f := range s.allowedFacets {
		if vs, ok := params[f]; ok {
			filtered[f] = vs
		}
	}
	s.normalizeRows(filtered)

	return s.selectResource(ctx, domain.ResourceItem, filtered)
}

// Collections searches the collection core. Multiple q values are AND-joined.
func (s *Service) Collections(ctx context.Context, params url.Values) ([]byte, error) {
	filtered := url.Values{}
	if q := joinQuery(params["q"]); q != "" {
		filtered.Set("q", q)
	}
	for _, k := range []string{"fq", "sort", "page", "rows"} {
		if vs, ok := params[k]; ok {
			filtered[k] = vs
		}
	}
	s.normalizeRows(filtered)

	return s.selectResource(ctx, domain.ResourceCollection, filtered)
}

// Summary runs an item search and strips the individual documents from the
// response, leaving the header, facet counts and highlighting for the
// summary view.
func (s *Service) Summary(ctx context.Context, params url.Values) ([]byte, error) {
	filtered := url.Values{}
	if q := joinQuery(params["q"]); q != "" {
		filtered.Set("q", q)
	}
	if vs, ok := params["fq"]; ok {
		filtered["fq"] = vs
	}

	body, err := s.selectResource(ctx, domain.ResourceItem, filtered)
	if err != nil {
		return nil, err
	}

	return stripDocs(body)
}

func (s *Service) selectResource(
	ctx context.Context, resource domain.Resource, params url.Values,
) ([]byte, error) {
	core, err := s.cores.CoreFor(resource)
	if err != nil {
		return nil, fmt.Errorf("resolve core: %w", err)
	}

	solrParams := s.translator.Translate(params)

	body, err := s.repo.Select(ctx, core, solrParams)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", core, err)
	}
	return body, nil
}

// normalizeRows clamps the rows parameter to the allowed counts.
func (s *Service) normalizeRows(params url.Values) {
	if _, ok := params["rows"]; !ok {
		return
	}
	rows, err := strconv.Atoi(params.Get("rows"))
	if err != nil {
		params.Set("rows", strconv.Itoa(s.defaultRows))
		return
	}
	if _, ok := s.allowedRows[rows]; !ok {
		rows = s.defaultRows
	}
	params.Set("rows", strconv.Itoa(rows))
}

func joinQuery(qs []string) string {
	parts := qs[:0:0]
	for _, q := range qs {
		if strings.TrimSpace(q) != "" {
			parts = append(parts, q)
		}
	}
	return strings.Join(parts, " AND ")
}

// stripDocs removes response.docs from a Solr payload, preserving the rest.
func stripDocs(body []byte) ([]byte, error) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse solr response: %w", err)
	}

	if resp, ok := payload["response"].(map[string]any); ok {
		delete(resp, "docs")
	}

	out, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}
	return out, nil
}
