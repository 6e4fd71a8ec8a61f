// Package search provides the select repository over the Solr client,
// with an optional caching decorator.
package search

import (
	"context"
	"fmt"
	"net/url"
)

// Selecter is the consumer interface over the Solr client.
type Selecter interface {
	Select(ctx context.Context, core string, params url.Values) ([]byte, error)
}

// Repo executes select queries against Solr.
type Repo struct {
	solr Selecter
}

// New creates a search repository.
func New(solr Selecter) *Repo {
	return &Repo{solr: solr}
}

// Select runs a translated select query against a core and returns the raw
// Solr JSON response.
func (r *Repo) Select(ctx context.Context, core string, params url.Values) ([]byte, error) {
	body, err := r.solr.Select(ctx, core, params)
	if err != nil {
		return nil, fmt.Errorf("solr select: %w", err)
	}
	return body, nil
}
