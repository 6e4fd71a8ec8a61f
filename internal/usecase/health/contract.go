package health

import "context"

// SolrPinger checks Solr availability.
type SolrPinger interface {
	Ping(ctx context.Context) error
}

// CachePinger checks cache store availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}
