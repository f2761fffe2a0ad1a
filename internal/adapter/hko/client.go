package hko

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/hko-weather-mcp/internal/domain"
	"github.com/couchcryptid/hko-weather-mcp/internal/observability"
)

// Upstream endpoints under the HKO open data base URL.
const (
	endpointWeather   = "weather.php"
	endpointOpenData  = "opendata.php"
	endpointLunarDate = "lunardate.php"
)

// HKO data type codes.
const (
	dataTypeCurrent       = "rhrread"
	dataTypeNineDay       = "fnd"
	dataTypeLocalForecast = "flw"
	dataTypeWarningSum    = "warnsum"
	dataTypeWarningInfo   = "warningInfo"
	dataTypeSpecialTips   = "swt"
	dataTypeRadiation     = "RYES"
	dataTypeHourlyTides   = "HHOT"
	dataTypeHighLowTides  = "HLT"
	dataTypeMeanTemp      = "CLMTEMP"
	dataTypeMaxTemp       = "CLMMAXT"
	dataTypeMinTemp       = "CLMMINT"
	dataTypeMoonTimes     = "MRS"
	dataTypeSunTimes      = "SRS"
	dataTypeVisibility    = "LTMV"
	dataTypeLightning     = "LHL"
	dataTypeLunar         = "lunardate"
)

// Upstream failure kinds. Every call is terminal: no retries anywhere.
var (
	ErrTransport = errors.New("hko transport failure")
	ErrDecode    = errors.New("hko response decode failure")
)

// utf8BOM prefixes some opendata.php responses; it must be stripped before
// JSON decoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Client performs single-shot GET requests against the HKO open data API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates an HKO API client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
		metrics:    metrics,
	}
}

// CurrentWeather fetches the rhrread current-conditions payload.
func (c *Client) CurrentWeather(ctx context.Context, lang string) (domain.CurrentWeatherRaw, error) {
	var raw domain.CurrentWeatherRaw
	q := buildQuery(dataTypeCurrent, lang, "", PeriodOptions{})
	if err := c.getJSON(ctx, endpointWeather, dataTypeCurrent, q, &raw); err != nil {
		return domain.CurrentWeatherRaw{}, err
	}
	return raw, nil
}

// NineDayForecast fetches the fnd 9-day forecast payload.
func (c *Client) NineDayForecast(ctx context.Context, lang string) (json.RawMessage, error) {
	return c.passThrough(ctx, endpointWeather, dataTypeNineDay, buildQuery(dataTypeNineDay, lang, "", PeriodOptions{}))
}

// LocalForecast fetches the flw local forecast payload.
func (c *Client) LocalForecast(ctx context.Context, lang string) (json.RawMessage, error) {
	return c.passThrough(ctx, endpointWeather, dataTypeLocalForecast, buildQuery(dataTypeLocalForecast, lang, "", PeriodOptions{}))
}

// WarningSummary fetches the warnsum warning summary payload.
func (c *Client) WarningSummary(ctx context.Context, lang string) (json.RawMessage, error) {
	return c.passThrough(ctx, endpointWeather, dataTypeWarningSum, buildQuery(dataTypeWarningSum, lang, "", PeriodOptions{}))
}

// WarningInfo fetches the warningInfo detailed warning payload.
func (c *Client) WarningInfo(ctx context.Context, lang string) (json.RawMessage, error) {
	return c.passThrough(ctx, endpointWeather, dataTypeWarningInfo, buildQuery(dataTypeWarningInfo, lang, "", PeriodOptions{}))
}

// SpecialTips fetches the swt special weather tips payload.
func (c *Client) SpecialTips(ctx context.Context, lang string) (json.RawMessage, error) {
	return c.passThrough(ctx, endpointWeather, dataTypeSpecialTips, buildQuery(dataTypeSpecialTips, lang, "", PeriodOptions{}))
}

// RadiationReport fetches the RYES radiation report for a validated date and
// station.
func (c *Client) RadiationReport(ctx context.Context, date, station, lang string) (json.RawMessage, error) {
	q := buildQuery(dataTypeRadiation, lang, station, PeriodOptions{})
	q.Set("date", date)
	return c.passThrough(ctx, endpointOpenData, dataTypeRadiation, q)
}

// HourlyTides fetches HHOT hourly tide heights for a station.
func (c *Client) HourlyTides(ctx context.Context, station, lang string, period PeriodOptions) (json.RawMessage, error) {
	return c.passThrough(ctx, endpointOpenData, dataTypeHourlyTides, buildQuery(dataTypeHourlyTides, lang, station, period))
}

// HighLowTides fetches HLT high/low tide times for a station.
func (c *Client) HighLowTides(ctx context.Context, station, lang string, period PeriodOptions) (json.RawMessage, error) {
	return c.passThrough(ctx, endpointOpenData, dataTypeHighLowTides, buildQuery(dataTypeHighLowTides, lang, station, period))
}

// TemperatureStat selects a daily temperature climatology dataset.
type TemperatureStat string

const (
	TempMean TemperatureStat = dataTypeMeanTemp
	TempMax  TemperatureStat = dataTypeMaxTemp
	TempMin  TemperatureStat = dataTypeMinTemp
)

// DailyTemperature fetches a CLMTEMP/CLMMAXT/CLMMINT daily temperature
// dataset for a station.
func (c *Client) DailyTemperature(ctx context.Context, stat TemperatureStat, station, lang string, year, month int) (json.RawMessage, error) {
	q := buildQuery(string(stat), lang, station, PeriodOptions{Year: year, Month: month})
	return c.passThrough(ctx, endpointOpenData, string(stat), q)
}

// MoonTimes fetches MRS moonrise/transit/moonset times.
func (c *Client) MoonTimes(ctx context.Context, lang string, year, month, day int) (json.RawMessage, error) {
	q := buildQuery(dataTypeMoonTimes, lang, "", PeriodOptions{Year: year, Month: month, Day: day})
	return c.passThrough(ctx, endpointOpenData, dataTypeMoonTimes, q)
}

// SunriseSunsetTimes fetches SRS sunrise/transit/sunset times.
func (c *Client) SunriseSunsetTimes(ctx context.Context, lang string, year, month, day int) (json.RawMessage, error) {
	q := buildQuery(dataTypeSunTimes, lang, "", PeriodOptions{Year: year, Month: month, Day: day})
	return c.passThrough(ctx, endpointOpenData, dataTypeSunTimes, q)
}

// Visibility fetches the LTMV 10-minute mean visibility dataset.
func (c *Client) Visibility(ctx context.Context, lang string) (json.RawMessage, error) {
	return c.passThrough(ctx, endpointOpenData, dataTypeVisibility, buildQuery(dataTypeVisibility, lang, "", PeriodOptions{}))
}

// LightningData fetches the LHL cloud-to-ground/cloud-to-cloud lightning counts.
func (c *Client) LightningData(ctx context.Context, lang string) (json.RawMessage, error) {
	return c.passThrough(ctx, endpointOpenData, dataTypeLightning, buildQuery(dataTypeLightning, lang, "", PeriodOptions{}))
}

// GregorianLunarCalendar fetches the lunardate.php calendar conversion for a
// date, defaulting an omitted month or day to the start of its parent period.
func (c *Client) GregorianLunarCalendar(ctx context.Context, year, month, day int) (json.RawMessage, error) {
	return c.passThrough(ctx, endpointLunarDate, dataTypeLunar, lunarDateQuery(year, month, day))
}

// passThrough fetches a payload that is returned to the caller verbatim.
func (c *Client) passThrough(ctx context.Context, endpoint, dataType string, q url.Values) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, endpoint, dataType, q, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// getJSON performs one GET against an HKO endpoint and decodes the JSON body
// into out. Non-success status is a transport failure; a malformed body is a
// decode failure. Cancellation and timeouts come from ctx and the client's
// HTTP timeout.
func (c *Client) getJSON(ctx context.Context, endpoint, dataType string, q url.Values, out any) error {
	fullURL := c.baseURL + "/" + endpoint + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(dataType).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(dataType, "transport_error").Inc()
		return fmt.Errorf("%w: %s request: %v", ErrTransport, dataType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.UpstreamRequests.WithLabelValues(dataType, "transport_error").Inc()
		c.logger.Warn("hko api returned non-success status", "data_type", dataType, "status", resp.StatusCode)
		return fmt.Errorf("%w: %s returned status %d", ErrTransport, dataType, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(dataType, "transport_error").Inc()
		return fmt.Errorf("%w: read %s body: %v", ErrTransport, dataType, err)
	}

	// Some opendata.php datasets are served with a UTF-8 BOM.
	body = bytes.TrimPrefix(body, utf8BOM)

	if err := json.Unmarshal(body, out); err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(dataType, "decode_error").Inc()
		return fmt.Errorf("%w: %s: %v", ErrDecode, dataType, err)
	}

	c.metrics.UpstreamRequests.WithLabelValues(dataType, "success").Inc()
	c.logger.Debug("hko api request completed", "data_type", dataType, "endpoint", endpoint)
	return nil
}
