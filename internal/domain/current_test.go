package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func testRawCurrentWeather() CurrentWeatherRaw {
	return CurrentWeatherRaw{
		Temperature: ObservationSeries{
			RecordTime: "2025-06-07T22:00:00+08:00",
			Data: []Observation{
				{Place: "King's Park", Value: 28, Unit: "C"},
				{Place: "Hong Kong Observatory", Value: 29, Unit: "C"},
				{Place: "Cheung Chau", Value: 27, Unit: "C"},
				{Place: "Sha Tin", Value: 30, Unit: "C"},
			},
		},
		Humidity: ObservationSeries{
			RecordTime: "2025-06-07T22:00:00+08:00",
			Data: []Observation{
				{Place: "Hong Kong Observatory", Value: 75, Unit: "percent"},
				{Place: "Cheung Chau", Value: 80, Unit: "percent"},
			},
		},
		Rainfall: &RainfallSeries{
			StartTime: "2025-06-07T20:45:00+08:00",
			EndTime:   "2025-06-07T21:45:00+08:00",
			Data: []RainfallDistrict{
				{Place: "Central & Western District", Max: ptr(0), Min: ptr(0), Unit: "mm"},
				{Place: "Sai Kung", Max: ptr(2.5), Min: ptr(0.5), Unit: "mm"},
				{Place: "Sha Tin", Max: ptr(1.0), Min: ptr(0), Unit: "mm"},
			},
		},
		WarningMessage: json.RawMessage(`[]`),
		UVIndex:        json.RawMessage(`""`),
		Icon:           json.RawMessage(`[72]`),
		IconUpdateTime: "2025-06-07T18:00:00+08:00",
		UpdateTime:     "2025-06-07T22:02:00+08:00",
	}
}

func TestReconcileCurrentWeather_MatchedPlace(t *testing.T) {
	result, err := ReconcileCurrentWeather(testRawCurrentWeather(), "Sha Tin")
	require.NoError(t, err)

	assert.Equal(t, "Sha Tin", result.WeatherObservation.Temperature.Place)
	assert.Equal(t, 30.0, result.WeatherObservation.Temperature.Value)
	assert.Equal(t, "C", result.WeatherObservation.Temperature.Unit)
	assert.Equal(t, "2025-06-07T22:00:00+08:00", result.WeatherObservation.Temperature.RecordTime)

	// Sha Tin has no humidity entry, so the Observatory fallback value is
	// used but the place stays canonical.
	assert.Equal(t, "Sha Tin", result.WeatherObservation.Humidity.Place)
	assert.Equal(t, 75.0, result.WeatherObservation.Humidity.Value)

	assert.Equal(t, "2025-06-07T22:02:00+08:00", result.UpdateTime)
}

func TestReconcileCurrentWeather_CaseInsensitiveMatch(t *testing.T) {
	result, err := ReconcileCurrentWeather(testRawCurrentWeather(), "cheung chau")
	require.NoError(t, err)

	assert.Equal(t, "Cheung Chau", result.WeatherObservation.Temperature.Place)
	assert.Equal(t, 27.0, result.WeatherObservation.Temperature.Value)
	assert.Equal(t, 80.0, result.WeatherObservation.Humidity.Value)
}

func TestReconcileCurrentWeather_UnknownPlaceFallsBack(t *testing.T) {
	result, err := ReconcileCurrentWeather(testRawCurrentWeather(), "Atlantis")
	require.NoError(t, err)

	assert.Equal(t, "Hong Kong Observatory", result.WeatherObservation.Temperature.Place)
	assert.Equal(t, 29.0, result.WeatherObservation.Temperature.Value)
	assert.Equal(t, 75.0, result.WeatherObservation.Humidity.Value)
	assert.Equal(t, "Hong Kong Observatory", result.WeatherObservation.Humidity.Place)
}

func TestReconcileCurrentWeather_SynthesizedDefaults(t *testing.T) {
	raw := testRawCurrentWeather()
	raw.Temperature.Data = nil
	raw.Humidity.Data = nil

	result, err := ReconcileCurrentWeather(raw, "Atlantis")
	require.NoError(t, err)

	temp := result.WeatherObservation.Temperature
	assert.Equal(t, "Hong Kong Observatory", temp.Place)
	assert.Equal(t, 25.0, temp.Value)
	assert.Equal(t, "C", temp.Unit)

	humidity := result.WeatherObservation.Humidity
	assert.Equal(t, 60.0, humidity.Value)
	assert.Equal(t, "percent", humidity.Unit)
}

func TestReconcileCurrentWeather_RainfallAggregation(t *testing.T) {
	result, err := ReconcileCurrentWeather(testRawCurrentWeather(), "Sha Tin")
	require.NoError(t, err)

	rainfall := result.WeatherObservation.Rainfall
	assert.Equal(t, 2.5, rainfall.Value)
	assert.Equal(t, 0.0, rainfall.Min)
	assert.Equal(t, "mm", rainfall.Unit)
	assert.Equal(t, "2025-06-07T20:45:00+08:00", rainfall.StartTime)
	assert.Equal(t, "2025-06-07T21:45:00+08:00", rainfall.EndTime)
}

func TestReconcileCurrentWeather_NoRainfallKey(t *testing.T) {
	raw := testRawCurrentWeather()
	raw.Rainfall = nil

	result, err := ReconcileCurrentWeather(raw, "Sha Tin")
	require.NoError(t, err)

	rainfall := result.WeatherObservation.Rainfall
	assert.Equal(t, 0.0, rainfall.Value)
	assert.Equal(t, 0.0, rainfall.Min)
	assert.Equal(t, "mm", rainfall.Unit)
	assert.Empty(t, rainfall.StartTime)
	assert.Empty(t, rainfall.EndTime)
}

func TestReconcileCurrentWeather_MissingDistrictValues(t *testing.T) {
	raw := testRawCurrentWeather()
	raw.Rainfall.Data = []RainfallDistrict{
		{Place: "Eastern District", Unit: "mm"},
		{Place: "Sai Kung", Max: ptr(1.5), Min: ptr(0.5), Unit: "mm"},
	}

	result, err := ReconcileCurrentWeather(raw, "Sha Tin")
	require.NoError(t, err)

	assert.Equal(t, 1.5, result.WeatherObservation.Rainfall.Value)
	assert.Equal(t, 0.0, result.WeatherObservation.Rainfall.Min)
}

func TestReconcileCurrentWeather_WarningResolution(t *testing.T) {
	tests := []struct {
		name     string
		message  json.RawMessage
		expected string
	}{
		{"empty list", json.RawMessage(`[]`), NoWarning},
		{"absent field", nil, NoWarning},
		{"single warning", json.RawMessage(`["Thunderstorm Warning"]`), "Thunderstorm Warning"},
		{"only first of multiple", json.RawMessage(`["Red Rainstorm","T8 Signal"]`), "Red Rainstorm"},
		{"scalar warning", json.RawMessage(`"Amber Rainstorm"`), "Amber Rainstorm"},
		{"empty scalar", json.RawMessage(`""`), NoWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := testRawCurrentWeather()
			raw.WarningMessage = tt.message

			result, err := ReconcileCurrentWeather(raw, "Sha Tin")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.GeneralSituation)
		})
	}
}

func TestReconcileCurrentWeather_MissingUpdateTime(t *testing.T) {
	raw := testRawCurrentWeather()
	raw.UpdateTime = ""

	_, err := ReconcileCurrentWeather(raw, "Sha Tin")
	assert.ErrorIs(t, err, ErrMissingUpdateTime)
}

func TestReconcileCurrentWeather_PassThroughFields(t *testing.T) {
	result, err := ReconcileCurrentWeather(testRawCurrentWeather(), "Sha Tin")
	require.NoError(t, err)

	assert.Equal(t, json.RawMessage(`[72]`), result.Icon)
	assert.Equal(t, "2025-06-07T18:00:00+08:00", result.IconUpdateTime)
	assert.Equal(t, json.RawMessage(`""`), result.WeatherObservation.UVIndex)
}

func TestReconcileCurrentWeather_EmptyPassThroughDefaults(t *testing.T) {
	raw := testRawCurrentWeather()
	raw.Icon = nil
	raw.UVIndex = nil
	raw.IconUpdateTime = ""

	result, err := ReconcileCurrentWeather(raw, "Sha Tin")
	require.NoError(t, err)

	assert.Equal(t, json.RawMessage(`[]`), result.Icon)
	assert.Equal(t, json.RawMessage(`{}`), result.WeatherObservation.UVIndex)
	assert.Empty(t, result.IconUpdateTime)
}

func TestReconcileCurrentWeather_Idempotent(t *testing.T) {
	raw := testRawCurrentWeather()

	first, err := ReconcileCurrentWeather(raw, "cheung chau")
	require.NoError(t, err)
	second, err := ReconcileCurrentWeather(raw, "cheung chau")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestReconcileCurrentWeather_DecodesUpstreamPayload(t *testing.T) {
	// Shape check against a literal rhrread payload rather than the
	// pre-built fixture.
	payload := []byte(`{
		"temperature": {"recordTime": "2025-06-07T22:00:00+08:00", "data": [
			{"place": "Hong Kong Observatory", "value": 29, "unit": "C"}
		]},
		"humidity": {"recordTime": "2025-06-07T22:00:00+08:00", "data": [
			{"place": "Hong Kong Observatory", "value": 75, "unit": "percent"}
		]},
		"rainfall": {"startTime": "s", "endTime": "e", "data": [
			{"place": "Sai Kung", "max": 2.5, "min": 0, "unit": "mm", "main": "FALSE"}
		]},
		"warningMessage": "Hot Weather Warning",
		"uvindex": {"data": [{"place": "King's Park", "value": 4}]},
		"icon": [72],
		"iconUpdateTime": "2025-06-07T18:00:00+08:00",
		"updateTime": "2025-06-07T22:02:00+08:00"
	}`)

	var raw CurrentWeatherRaw
	require.NoError(t, json.Unmarshal(payload, &raw))

	result, err := ReconcileCurrentWeather(raw, "Hong Kong Observatory")
	require.NoError(t, err)
	assert.Equal(t, "Hot Weather Warning", result.GeneralSituation)
	assert.Equal(t, 29.0, result.WeatherObservation.Temperature.Value)
	assert.Equal(t, 2.5, result.WeatherObservation.Rainfall.Value)
	assert.JSONEq(t, `{"data": [{"place": "King's Park", "value": 4}]}`, string(result.WeatherObservation.UVIndex))
}
