package hko

import (
	"fmt"
	"net/url"
	"strconv"
)

// PeriodOptions narrows a station dataset to a year, month, day, or hour.
// Zero means unset; unset fields are omitted from the upstream query rather
// than defaulted. Numeric ranges are not validated locally: out-of-range
// values are forwarded and surface as upstream decode failures.
type PeriodOptions struct {
	Year  int
	Month int
	Day   int
	Hour  int
}

// buildQuery assembles the query-string vocabulary the HKO API expects.
// Every request carries dataType, lang and rformat=json; the optional
// station and period fields are included only when set, serialized as their
// string form to preserve the upstream untyped query convention.
func buildQuery(dataType, lang, station string, period PeriodOptions) url.Values {
	q := url.Values{
		"dataType": {dataType},
		"lang":     {lang},
		"rformat":  {"json"},
	}
	if station != "" {
		q.Set("station", station)
	}
	if period.Year > 0 {
		q.Set("year", strconv.Itoa(period.Year))
	}
	if period.Month > 0 {
		q.Set("month", strconv.Itoa(period.Month))
	}
	if period.Day > 0 {
		q.Set("day", strconv.Itoa(period.Day))
	}
	if period.Hour > 0 {
		q.Set("hour", strconv.Itoa(period.Hour))
	}
	return q
}

// lunarDateQuery collapses year/month/day into the single ISO date string the
// lunardate.php endpoint takes. An omitted month or day resolves to the first
// unit of its parent period, never to today.
func lunarDateQuery(year, month, day int) url.Values {
	if month <= 0 {
		month = 1
		day = 1
	}
	if day <= 0 {
		day = 1
	}
	return url.Values{
		"date": {fmt.Sprintf("%04d-%02d-%02d", year, month, day)},
	}
}
