package solr

import (
	"encoding/json"
	"net/http"

	"github.com/cdcp/search-api/internal/domain"
)

// solrErrorBody is the JSON shape of a Solr error response.
type solrErrorBody struct {
	ResponseHeader struct {
		Status int `json:"status"`
	} `json:"responseHeader"`
	Error struct {
		Msg  string `json:"msg"`
		Code int    `json:"code"`
	} `json:"error"`
}

// parseSolrError extracts the status and message Solr reported so the
// transport layer can propagate them. A body that is not Solr's error JSON
// (proxy pages, truncated responses) maps to a generic upstream error.
func parseSolrError(httpStatus int, body []byte) error {
	var parsed solrErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Msg != "" {
		status := parsed.ResponseHeader.Status
		if status < 400 || status > 599 {
			status = parsed.Error.Code
		}
		if status < 400 || status > 599 {
			status = httpStatus
		}
		return domain.NewUpstreamError(status, parsed.Error.Msg)
	}

	return domain.NewUpstreamError(httpStatus, http.StatusText(httpStatus))
}
