package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel validation errors. Handlers match these with errors.Is to decide
// how a failure is reported to the caller.
var (
	ErrUnknownStation      = errors.New("unknown station code")
	ErrInvalidDateFormat   = errors.New("invalid date format")
	ErrDateNotYetAvailable = errors.New("date not yet available")
	ErrMissingUpdateTime   = errors.New("missing updateTime in upstream response")
)

// UnknownStationError reports a station code that is not in the enumeration
// for its domain, carrying the valid codes for self-service discovery.
type UnknownStationError struct {
	Domain StationDomain
	Code   string
	Valid  []string
}

func (e *UnknownStationError) Error() string {
	return fmt.Sprintf("unknown %s station code %q: valid codes are %s",
		e.Domain, e.Code, strings.Join(e.Valid, ", "))
}

func (e *UnknownStationError) Unwrap() error { return ErrUnknownStation }

// reportDateFormat is the YYYYMMDD literal layout used by HKO report queries.
const reportDateFormat = "20060102"

// ValidateStation checks a station code against the enumeration for the given
// domain. The language selects the name table; an unrecognized language is not
// an error and falls back to English. Codes are case-sensitive.
func ValidateStation(domain StationDomain, code, lang string) error {
	names := StationNames(domain, lang)
	if code == "" {
		return &UnknownStationError{Domain: domain, Code: code, Valid: StationCodes(domain)}
	}
	if _, ok := names[code]; !ok {
		return &UnknownStationError{Domain: domain, Code: code, Valid: StationCodes(domain)}
	}
	return nil
}

// ValidateReportDate checks a YYYYMMDD date string for a dated report request.
// The date must parse as a valid calendar date and must be strictly before the
// start of the current local day: upstream reports are published with one day
// of latency, so today's data does not exist yet.
func ValidateReportDate(date string) error {
	if date == "" {
		return fmt.Errorf("%w: date is required in YYYYMMDD form, e.g. 20250618", ErrInvalidDateFormat)
	}
	parsed, err := time.ParseInLocation(reportDateFormat, date, time.Local)
	if err != nil {
		return fmt.Errorf("%w: %q is not a YYYYMMDD date", ErrInvalidDateFormat, date)
	}

	// Truncate both sides to local midnight so the boundary is exactly the
	// start of the current day.
	now := clock.Now().Local()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	requested := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location())

	if !requested.Before(today) {
		return fmt.Errorf("%w: %s must be yesterday or earlier", ErrDateNotYetAvailable, date)
	}
	return nil
}
