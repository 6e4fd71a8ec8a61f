// Package index implements the write use cases: indexing item and
// collection documents into Solr and deleting them by id.
//
// These endpoints serve the indexer pipeline, not the public site; in
// production the API sits in a private subnet and access is limited to the
// services that need it.
package index

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/cdcp/search-api/internal/domain"
	"github.com/cdcp/search-api/internal/logger"
)

// Service forwards indexing writes to Solr.
type Service struct {
	solr SolrWriter
}

// New creates an index service.
func New(solr SolrWriter) *Service {
	return &Service{solr: solr}
}

// PutItem indexes an item document. The document must carry an id.
// Returns the upstream Solr status code.
func (s *Service) PutItem(ctx context.Context, doc []byte) (int, error) {
	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrInvalidDocument, err)
	}
	if parsed.ID == "" {
		return 0, fmt.Errorf("%w: missing id", domain.ErrInvalidDocument)
	}

	logger.FromContext(ctx).Info("indexing item", zap.String("id", parsed.ID))

	core, err := s.solr.CoreFor(domain.ResourceItem)
	if err != nil {
		return 0, fmt.Errorf("resolve core: %w", err)
	}

	status, err := s.solr.Update(ctx, core, url.Values{}, doc)
	if err != nil {
		return status, fmt.Errorf("update item: %w", err)
	}
	return status, nil
}

// PutCollection indexes a collection document. The document must carry
// name.url-slug, which Solr maps to the id field.
// Returns the upstream Solr status code.
func (s *Service) PutCollection(ctx context.Context, doc []byte) (int, error) {
	var parsed struct {
		Name struct {
			URLSlug string `json:"url-slug"`
		} `json:"name"`
	}
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrInvalidDocument, err)
	}
	if parsed.Name.URLSlug == "" {
		return 0, fmt.Errorf("%w: missing name.url-slug", domain.ErrInvalidDocument)
	}

	logger.FromContext(ctx).Info("indexing collection", zap.String("url_slug", parsed.Name.URLSlug))

	core, err := s.solr.CoreFor(domain.ResourceCollection)
	if err != nil {
		return 0, fmt.Errorf("resolve core: %w", err)
	}

	// Flatten every field and map the url-slug to the document id.
	params := url.Values{"f": {"$FQN:/**", "id:/name/url-slug"}}

	status, err := s.solr.Update(ctx, core, params, doc)
	if err != nil {
		return status, fmt.Errorf("update collection: %w", err)
	}
	return status, nil
}

// Delete removes a document by file id from the resource's core.
// Returns the upstream Solr status code.
func (s *Service) Delete(ctx context.Context, resource domain.Resource, fileID string) (int, error) {
	core, err := s.solr.CoreFor(resource)
	if err != nil {
		return 0, fmt.Errorf("resolve core: %w", err)
	}

	// Route values arrive percent-encoded from the indexer.
	id := fileID
	if unescaped, err := url.QueryUnescape(fileID); err == nil {
		id = unescaped
	}

	logger.FromContext(ctx).Info("deleting document",
		zap.String("resource", string(resource)),
		zap.String("id", id),
	)

	status, err := s.solr.DeleteByQuery(ctx, core, fmt.Sprintf("id:%q", id))
	if err != nil {
		return status, fmt.Errorf("delete %s: %w", resource, err)
	}
	return status, nil
}
