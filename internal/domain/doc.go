// Package domain models Hong Kong Observatory (HKO) open-data weather records.
//
// # Data Source
//
// All data comes from the HKO open data platform at
// https://data.weather.gov.hk/weatherAPI/opendata/. Three PHP endpoints are
// used: weather.php for live weather products, opendata.php for archived and
// station-based datasets, and lunardate.php for Gregorian-Lunar calendar
// conversion. Every request carries a dataType code, a language code and
// rformat=json.
//
// # HKO Conventions
//
// Language codes:
//
//	en = English, tc = Traditional Chinese, sc = Simplified Chinese.
//	An unrecognized language is not an error: station name lookups silently
//	degrade to English while the caller's literal value is still forwarded
//	upstream unchanged.
//
// Data type codes:
//
//	weather.php:  rhrread (current), fnd (9-day forecast), flw (local
//	              forecast), warnsum, warningInfo, swt (special tips)
//	opendata.php: RYES (radiation report), HHOT / HLT (tides), CLMTEMP /
//	              CLMMAXT / CLMMINT (daily temperatures), MRS / SRS
//	              (moon / sun times), LTMV (visibility), LHL (lightning)
//
// Station codes:
//
//	2-3 uppercase letters (with one historical digit suffix, e.g. TY1),
//	case-sensitive. Radiation report stations and tide stations are separate
//	enumerations. The name tables for en/tc/sc carry identical key sets.
//
// Report dates:
//
//	YYYYMMDD literals. The RYES radiation report is published with one day
//	of latency, so a requested date must be strictly before the start of
//	the current local day.
//
// # Current weather reconciliation
//
// The rhrread payload carries independent observation series (temperature,
// humidity, rainfall, warnings, UV index) keyed by place or district.
// [ReconcileCurrentWeather] merges them into one per-place record:
//
//   - Warnings: the first message wins; an empty list or field reads
//     "No warning in force". Multiple simultaneous warnings are not
//     concatenated.
//   - Temperature is matched to the requested place case-insensitively,
//     falling back to the Hong Kong Observatory station, and finally to a
//     synthesized 25 C reading when even that station is absent.
//   - Humidity is re-matched against the place chosen for temperature, with
//     a synthesized 60 percent fallback.
//   - Rainfall is district-based and never matched to the place: the record
//     reports the territory-wide maximum (and minimum) across districts.
//
// The synthesized fallback values (25 C, 60 percent) stand in for "no
// observation currently available" and are part of the output contract.
package domain
