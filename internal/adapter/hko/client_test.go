package hko

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/hko-weather-mcp/internal/observability"
)

const contentTypeJSON = "application/json"

func testClient(baseURL string) *Client {
	return NewClient(
		baseURL,
		5*time.Second,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NewMetricsForTesting(),
	)
}

func TestClient_CurrentWeather(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather.php", r.URL.Path)
		assert.Equal(t, "rhrread", r.URL.Query().Get("dataType"))
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		assert.Equal(t, "json", r.URL.Query().Get("rformat"))

		w.Header().Set("Content-Type", contentTypeJSON)
		_, _ = w.Write([]byte(`{
			"temperature": {"recordTime": "2025-06-07T22:00:00+08:00", "data": [
				{"place": "Hong Kong Observatory", "value": 29, "unit": "C"}
			]},
			"humidity": {"recordTime": "2025-06-07T22:00:00+08:00", "data": []},
			"warningMessage": [],
			"updateTime": "2025-06-07T22:02:00+08:00"
		}`))
	}))
	defer srv.Close()

	raw, err := testClient(srv.URL).CurrentWeather(context.Background(), "en")
	require.NoError(t, err)

	require.Len(t, raw.Temperature.Data, 1)
	assert.Equal(t, "Hong Kong Observatory", raw.Temperature.Data[0].Place)
	assert.Equal(t, 29.0, raw.Temperature.Data[0].Value)
	assert.Equal(t, "2025-06-07T22:02:00+08:00", raw.UpdateTime)
}

func TestClient_RadiationReport_QueryShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/opendata.php", r.URL.Path)
		assert.Equal(t, "RYES", r.URL.Query().Get("dataType"))
		assert.Equal(t, "20250617", r.URL.Query().Get("date"))
		assert.Equal(t, "HKO", r.URL.Query().Get("station"))

		w.Header().Set("Content-Type", contentTypeJSON)
		_, _ = w.Write([]byte(`{"ChekLapKokLocationName": "Chek Lap Kok"}`))
	}))
	defer srv.Close()

	raw, err := testClient(srv.URL).RadiationReport(context.Background(), "20250617", "HKO", "en")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ChekLapKokLocationName": "Chek Lap Kok"}`, string(raw))
}

func TestClient_HourlyTides_BOMStripped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "HHOT", r.URL.Query().Get("dataType"))
		assert.Equal(t, "QUB", r.URL.Query().Get("station"))
		assert.Equal(t, "2024", r.URL.Query().Get("year"))

		// opendata.php serves some datasets with a UTF-8 BOM prefix.
		_, _ = w.Write(append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"fields": ["Date"], "data": []}`)...))
	}))
	defer srv.Close()

	raw, err := testClient(srv.URL).HourlyTides(context.Background(), "QUB", "en", PeriodOptions{Year: 2024})
	require.NoError(t, err)
	assert.JSONEq(t, `{"fields": ["Date"], "data": []}`, string(raw))
}

func TestClient_GregorianLunarCalendar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lunardate.php", r.URL.Path)
		assert.Equal(t, "2024-06-01", r.URL.Query().Get("date"))
		assert.False(t, r.URL.Query().Has("dataType"))

		w.Header().Set("Content-Type", contentTypeJSON)
		_, _ = w.Write([]byte(`{"LunarYear": "甲辰年", "LunarDate": "四月廿五"}`))
	}))
	defer srv.Close()

	raw, err := testClient(srv.URL).GregorianLunarCalendar(context.Background(), 2024, 6, 0)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "LunarYear")
}

func TestClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal error"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Visibility(context.Background(), "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", contentTypeJSON)
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).LightningData(context.Background(), "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestClient_EmptyBody(t *testing.T) {
	// Upstream rejections of out-of-range numeric inputs surface as decode
	// failures on the empty body rather than local validation errors.
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	defer srv.Close()

	_, err := testClient(srv.URL).HighLowTides(context.Background(), "CCH", "en", PeriodOptions{Year: 9999})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient(srv.URL).NineDayForecast(ctx, "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_UnrecognizedLangForwardedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fr", r.URL.Query().Get("lang"))
		w.Header().Set("Content-Type", contentTypeJSON)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).LocalForecast(context.Background(), "fr")
	require.NoError(t, err)
}
