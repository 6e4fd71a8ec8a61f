package search

import (
	"context"
	"net/url"

	"github.com/cdcp/search-api/internal/domain"
)

// Repository executes translated select queries.
type Repository interface {
	Select(ctx context.Context, core string, params url.Values) ([]byte, error)
}

// CoreResolver maps resource types to Solr core names.
type CoreResolver interface {
	CoreFor(r domain.Resource) (string, error)
}
