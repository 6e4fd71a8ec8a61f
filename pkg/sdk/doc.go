// Package searchapi is a Go client for the catalogue search API.
//
// The search endpoints return the Solr response verbatim as raw JSON,
// so callers decode only the parts they need:
//
//	client, err := searchapi.New("http://localhost:8000")
//	if err != nil {
//		log.Fatal(err)
//	}
//	body, err := client.Items(ctx, url.Values{"keyword": {"bestiary"}})
//
// Write operations require an API key when the server has one configured:
//
//	client, err := searchapi.New(baseURL, searchapi.WithAPIKey("secret"))
//	status, err := client.PutItem(ctx, map[string]any{"id": "ms-123"})
package searchapi
