package query

import "fmt"

// Bounds used when a date search is open-ended. The catalogue holds nothing
// after the corpus cutoff and nothing before antiquity.
const (
	dateRangeFloor  = "-3000-01-01"
	dateRangeCutoff = "2009-02-12"
	implicitRangeMin = "1609-02-12"
)

// dateString builds a dateRange token from year/month/day parts.
// Returns "" when the parts cannot form a valid token (no year, or a day
// without a month).
func dateString(year, month, day string) string {
	if year == "" {
		return ""
	}
	if day != "" && month == "" {
		return ""
	}

	s := pad2(year)
	if month != "" {
		s += "-" + pad2(month)
	}
	if day != "" {
		s += "-" + pad2(day)
	}
	return s
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// dateRangeClause builds the dateRange filter query for a min/max date pair
// and a search-date-type of "before", "after" or "between".
//
// A bounded range (explicit or implied by "between") intersects the record's
// date range; a bare minimum date must fall within it.
func dateRangeClause(dateMin, dateMax, searchDateType string) string {
	predicate := "Within"
	var result string

	switch {
	case dateMax != "" || searchDateType == "between":
		if dateMax == "" {
			dateMax = dateRangeCutoff
		}
		if dateMin == "" {
			dateMin = implicitRangeMin
		}
		predicate = "Intersects"
		result = fmt.Sprintf("[%s TO %s]", dateMin, dateMax)
	case searchDateType == "after":
		predicate = "Intersects"
		result = fmt.Sprintf("[%s TO %s]", dateMin, dateRangeCutoff)
	case searchDateType == "before":
		predicate = "Intersects"
		result = fmt.Sprintf("[%s TO %s]", dateRangeFloor, dateMin)
	default:
		result = dateMin
	}

	if result == "" {
		return ""
	}
	return fmt.Sprintf("{!field f=dateRange op=%s}%s", predicate, result)
}
