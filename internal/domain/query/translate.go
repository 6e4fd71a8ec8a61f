// Package query translates site search parameters into Solr query parameters.
//
// The site exposes friendly, stable parameter names (keyword, year/month/day
// ranges, legacy xtf-style facet names) that do not match the Solr schema.
// Translate maps them onto q/fq/sort/start and facet drill-down parameters,
// and guarantees that only known parameters reach Solr.
package query

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DefaultAllowedFacets are the facet fields the site may filter on.
var DefaultAllowedFacets = []string{
	"author_sm", "editor_sm", "lang_sm", "ms_date_sm", "ms_datecert_s",
	"ms_origin_sm", "wk_subjects_sm", "ms_materials_sm", "ms_decotype_sm",
	"ms_music_b", "ms_bindingdate_sm", "ms_digitized_s", "ms_repository_s",
	"ms_collection_s",
}

// Parameters that never reach Solr under their site names.
var internalParams = map[string]struct{}{
	"text":             {},
	"keyword":          {},
	"sectionType":      {},
	"search-date-type": {},
}

// Raw Solr field names a client must not inject directly.
var reservedSolrFields = map[string]struct{}{
	"_text_":                  {},
	"content_textual-content": {},
	"content_footnotes":       {},
	"content_summary":         {},
}

// Fields whose values are remapped into the main query string.
var qRemapFields = map[string]struct{}{
	"day":       {},
	"month":     {},
	"dateRange": {},
}

// Hierarchical date facet fields, ordered coarse to fine.
var dateFacetFields = []string{"facet-year", "facet-year-month", "facet-year-month-day"}

var (
	dateFacetParamRe = regexp.MustCompile(`^f[0-9]+-date$`)
	legacyFacetRe    = regexp.MustCompile(`^f[0-9]+-(.+)$`)
	facetPrefixRe    = regexp.MustCompile(`^(facet|s)-.+$`)
	quotedRe         = regexp.MustCompile(`^"(.+?)"$`)
)

// Translator converts site search parameters into Solr select parameters.
type Translator struct {
	pageSize      int
	allowedFacets map[string]struct{}
}

// NewTranslator creates a Translator. pageSize <= 0 defaults to 20;
// nil allowedFacets defaults to DefaultAllowedFacets.
func NewTranslator(pageSize int, allowedFacets []string) *Translator {
	if pageSize <= 0 {
		pageSize = 20
	}
	if allowedFacets == nil {
		allowedFacets = DefaultAllowedFacets
	}
	facets := make(map[string]struct{}, len(allowedFacets))
	for _, f := range allowedFacets {
		facets[f] = struct{}{}
	}
	return &Translator{pageSize: pageSize, allowedFacets: facets}
}

// Translate maps site parameters to Solr parameters. The zero value of the
// result always carries a usable q (empty searches become match-all so that
// facet-based wayfinding works).
func (t *Translator) Translate(params url.Values) url.Values {
	set := pruneEmpty(params)

	var q, fq []string
	out := url.Values{}

	// Compound date parameters are folded into a single dateRange filter
	// and removed before the per-parameter pass.
	dateMin := dateString(set.Get("year"), set.Get("month"), set.Get("day"))
	dateMax := dateString(set.Get("year-max"), set.Get("month-max"), set.Get("day-max"))
	searchDateType := set.Get("search-date-type")

	if dateMin != "" || searchDateType == "between" {
		for _, k := range []string{
			"year", "month", "day", "year-max", "month-max", "day-max", "search-date-type",
		} {
			set.Del(k)
		}
		if clause := dateRangeClause(dateMin, dateMax, searchDateType); clause != "" {
			fq = append(fq, clause)
		}
	} else {
		set.Del("search-date-type")
	}

	for _, name := range sortedKeys(set) {
		values := set[name]

		switch {
		case inSet(qRemapFields, name):
			q = append(q, name+":("+strings.Join(values, " ")+")")

		case name == "keyword" || name == "text":
			q = append(q, "("+strings.Join(values, " ")+")")

		case name == "q":
			// already a Solr query expression, pass as-is
			q = append(q, values...)

		case name == "fq":
			fq = append(fq, values...)

		case dateFacetParamRe.MatchString(name):
			fq = append(fq, t.translateDateFacets(values, out)...)

		case inSet(t.allowedFacets, name):
			// match old-style xtf facet names f<n>-
			solrName := legacyFacetRe.ReplaceAllString(name, "facet-$1")
			for _, v := range values {
				fq = append(fq, solrName+`:"`+stripQuotes(v)+`"`)
			}

		case facetPrefixRe.MatchString(name):
			// facet-* and s-* params are the only raw filters the site emits
			for _, v := range values {
				fq = append(fq, name+`:"`+stripQuotes(v)+`"`)
			}

		case name == "page":
			page, err := strconv.Atoi(values[0])
			if err != nil || page < 1 {
				page = 1
			}
			out.Set("start", strconv.Itoa((page-1)*t.pageSize))

		case name == "sort":
			out.Set("sort", sortClause(values[0]))

		case name == "rows":
			out.Set("rows", values[0])

		case inSet(internalParams, name) || inSet(reservedSolrFields, name):
			// never forwarded

		default:
			q = append(q, name+":("+strings.Join(values, " ")+")")
		}
	}

	out.Set("q", normalizeQ(strings.Join(q, " ")))
	out["fq"] = fq
	return out
}

// translateDateFacets handles hierarchical date facet values of the form
// YYYY, YYYY::MM or YYYY::MM::DD. Each value contributes a filter query on
// the facet field matching its precision, plus facet.contains drill-down
// parameters for every level so the sidebar can expand the selected path.
func (t *Translator) translateDateFacets(values []string, out url.Values) []string {
	dates := make([]string, len(values))
	copy(dates, values)
	sort.Strings(dates)

	var fq []string
	for _, raw := range dates {
		date := stripQuotes(raw)
		parts := strings.Split(date, "::")
		numParts := len(parts)
		if numParts > len(dateFacetFields) {
			numParts = len(dateFacetFields)
		}
		solrName := dateFacetFields[numParts-1]

		for i, field := range dateFacetFields {
			key := "f." + field + ".facet.contains"
			if numParts-1 <= i {
				out.Set(key, date)
			} else {
				out.Set(key, strings.Join(parts[:i+1], "::"))
			}
		}

		fq = append(fq, solrName+`:"`+date+`"`)
	}
	return fq
}

// sortClause maps the site sort key to a Solr sort clause. Only title and
// date are sortable fields; anything else falls back to relevance.
func sortClause(raw string) string {
	switch raw {
	case "title", "date":
		return raw + " asc"
	default:
		return "score desc"
	}
}

// normalizeQ applies the default match-all query so facet-based wayfinding
// is possible on an empty search.
func normalizeQ(q string) string {
	switch strings.TrimSpace(q) {
	case "", "*", "(*)", "()":
		return "*"
	}
	return q
}

func stripQuotes(s string) string {
	return quotedRe.ReplaceAllString(s, "$1")
}

// pruneEmpty copies params, dropping keys whose values are all empty.
func pruneEmpty(params url.Values) url.Values {
	out := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			if v != "" {
				out.Add(k, v)
			}
		}
	}
	return out
}

func sortedKeys(v url.Values) []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func inSet(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
