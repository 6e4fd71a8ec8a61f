package index

import (
	"context"
	"net/url"

	"github.com/cdcp/search-api/internal/domain"
)

// SolrWriter is the consumer interface over the Solr client's write surface.
type SolrWriter interface {
	CoreFor(r domain.Resource) (string, error)
	Update(ctx context.Context, core string, params url.Values, doc []byte) (int, error)
	DeleteByQuery(ctx context.Context, core, query string) (int, error)
}
