package domain

import (
	"encoding/json"
	"strings"
)

// Synthesized fallback readings used when a series carries no entry for the
// Hong Kong Observatory station. The literal values are part of the output
// contract and must not change.
const (
	fallbackTemperature = 25
	fallbackHumidity    = 60
)

// NoWarning is reported when the upstream warningMessage field is empty.
const NoWarning = "No warning in force"

// Observation is one per-place reading within an rhrread series.
type Observation struct {
	Place string  `json:"place"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// ObservationSeries is an rhrread data series with its shared record time.
type ObservationSeries struct {
	RecordTime string        `json:"recordTime"`
	Data       []Observation `json:"data"`
}

// RainfallDistrict is one per-district rainfall entry. Min and max may be
// absent upstream; missing values read as zero.
type RainfallDistrict struct {
	Place string   `json:"place"`
	Max   *float64 `json:"max"`
	Min   *float64 `json:"min"`
	Unit  string   `json:"unit"`
	Main  string   `json:"main"`
}

// RainfallSeries covers an accumulation window rather than a point in time.
type RainfallSeries struct {
	StartTime string             `json:"startTime"`
	EndTime   string             `json:"endTime"`
	Data      []RainfallDistrict `json:"data"`
}

// CurrentWeatherRaw is the decoded rhrread payload. warningMessage is kept
// raw because upstream serves either a string or a list of strings; uvindex
// and icon are passed through verbatim.
type CurrentWeatherRaw struct {
	Temperature    ObservationSeries `json:"temperature"`
	Humidity       ObservationSeries `json:"humidity"`
	Rainfall       *RainfallSeries   `json:"rainfall"`
	WarningMessage json.RawMessage   `json:"warningMessage"`
	UVIndex        json.RawMessage   `json:"uvindex"`
	Icon           json.RawMessage   `json:"icon"`
	IconUpdateTime string            `json:"iconUpdateTime"`
	UpdateTime     string            `json:"updateTime"`
}

// Reading is a reconciled per-place measurement.
type Reading struct {
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	RecordTime string  `json:"recordTime"`
	Place      string  `json:"place"`
}

// RainfallSummary is the territory-wide rainfall headline: the maximum of all
// districts' max values and the minimum of all districts' min values.
type RainfallSummary struct {
	Value     float64 `json:"value"`
	Min       float64 `json:"min"`
	Unit      string  `json:"unit"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
}

// WeatherObservation groups the reconciled series for one place.
type WeatherObservation struct {
	Temperature Reading         `json:"temperature"`
	Humidity    Reading         `json:"humidity"`
	Rainfall    RainfallSummary `json:"rainfall"`
	UVIndex     json.RawMessage `json:"uvindex"`
}

// NormalizedCurrentWeather is the reconciled current-weather record for a
// requested place. Constructed fresh per call, never persisted.
type NormalizedCurrentWeather struct {
	GeneralSituation   string             `json:"generalSituation"`
	WeatherObservation WeatherObservation `json:"weatherObservation"`
	UpdateTime         string             `json:"updateTime"`
	Icon               json.RawMessage    `json:"icon"`
	IconUpdateTime     string             `json:"iconUpdateTime"`
}

// ReconcileCurrentWeather merges the independent rhrread series into a single
// record for the requested place. The place is matched case-insensitively
// against the temperature series; a miss falls back to the Hong Kong
// Observatory reading and is not an error. A missing updateTime is a hard
// failure. The function is pure: a fixed input always yields the same output.
func ReconcileCurrentWeather(raw CurrentWeatherRaw, place string) (NormalizedCurrentWeather, error) {
	if raw.UpdateTime == "" {
		return NormalizedCurrentWeather{}, ErrMissingUpdateTime
	}

	defaultTemp, defaultHumidity := observatoryDefaults(raw)

	temperature := matchTemperature(raw, place, defaultTemp)
	humidity := matchHumidity(raw, temperature.Place, defaultHumidity)

	return NormalizedCurrentWeather{
		GeneralSituation: resolveWarning(raw.WarningMessage),
		WeatherObservation: WeatherObservation{
			Temperature: temperature,
			Humidity:    humidity,
			Rainfall:    aggregateRainfall(raw.Rainfall),
			UVIndex:     rawOrDefault(raw.UVIndex, `{}`),
		},
		UpdateTime:     raw.UpdateTime,
		Icon:           rawOrDefault(raw.Icon, `[]`),
		IconUpdateTime: raw.IconUpdateTime,
	}, nil
}

// resolveWarning surfaces a single warning: the first element of a list, a
// non-empty scalar as-is, or the no-warning literal. Multiple simultaneous
// warnings are not concatenated.
func resolveWarning(msg json.RawMessage) string {
	if len(msg) == 0 {
		return NoWarning
	}
	var list []string
	if err := json.Unmarshal(msg, &list); err == nil {
		if len(list) > 0 && list[0] != "" {
			return list[0]
		}
		return NoWarning
	}
	var scalar string
	if err := json.Unmarshal(msg, &scalar); err == nil && scalar != "" {
		return scalar
	}
	return NoWarning
}

// observatoryDefaults resolves the fallback temperature and humidity readings
// from the Hong Kong Observatory entries, synthesizing the contract literals
// when the station is absent from a series.
func observatoryDefaults(raw CurrentWeatherRaw) (Reading, Reading) {
	temp := Reading{Value: fallbackTemperature, Unit: "C", Place: DefaultPlace}
	if obs, ok := findPlace(raw.Temperature.Data, DefaultPlace); ok {
		temp = Reading{Value: obs.Value, Unit: obs.Unit, Place: DefaultPlace}
	}

	humidity := Reading{Value: fallbackHumidity, Unit: "percent", Place: DefaultPlace}
	if obs, ok := findPlace(raw.Humidity.Data, DefaultPlace); ok {
		humidity = Reading{Value: obs.Value, Unit: obs.Unit, Place: DefaultPlace}
	}

	return temp, humidity
}

// matchTemperature scans the temperature series for the requested place,
// case-insensitively. The winning entry's place becomes canonical for the
// rest of the record.
func matchTemperature(raw CurrentWeatherRaw, place string, fallback Reading) Reading {
	for _, obs := range raw.Temperature.Data {
		if strings.EqualFold(obs.Place, place) {
			return Reading{
				Value:      obs.Value,
				Unit:       obs.Unit,
				RecordTime: raw.Temperature.RecordTime,
				Place:      obs.Place,
			}
		}
	}
	fallback.RecordTime = raw.Temperature.RecordTime
	return fallback
}

// matchHumidity re-scans the humidity series for the canonical place chosen
// by the temperature match. The humidity reading always reports the canonical
// place, even when the fallback value is used.
func matchHumidity(raw CurrentWeatherRaw, canonicalPlace string, fallback Reading) Reading {
	reading := fallback
	if obs, ok := findPlace(raw.Humidity.Data, canonicalPlace); ok {
		reading = Reading{Value: obs.Value, Unit: obs.Unit}
	}
	reading.RecordTime = raw.Humidity.RecordTime
	reading.Place = canonicalPlace
	return reading
}

// aggregateRainfall reports worst-case-in-territory rainfall: the maximum of
// all districts' max values and the minimum of all districts' min values.
// Rainfall is district-based and is never matched to the requested place.
func aggregateRainfall(series *RainfallSeries) RainfallSummary {
	summary := RainfallSummary{Unit: "mm"}
	if series == nil {
		return summary
	}

	summary.StartTime = series.StartTime
	summary.EndTime = series.EndTime
	for i, district := range series.Data {
		maxVal := floatOrZero(district.Max)
		minVal := floatOrZero(district.Min)
		if maxVal > summary.Value {
			summary.Value = maxVal
		}
		if i == 0 || minVal < summary.Min {
			summary.Min = minVal
		}
	}
	return summary
}

func findPlace(data []Observation, place string) (Observation, bool) {
	for _, obs := range data {
		if obs.Place == place {
			return obs, true
		}
	}
	return Observation{}, false
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func rawOrDefault(raw json.RawMessage, def string) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage(def)
	}
	return raw
}
