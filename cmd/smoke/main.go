// Command smoke performs live end-to-end checks against the real Hong Kong
// Observatory open data API. It exercises one dataset per endpoint family and
// verifies the responses decode and reconcile. Network-dependent: not part of
// the unit test suite.
//
// Usage:
//
//	go run ./cmd/smoke
//	go run ./cmd/smoke -checks current,tides -timeout 30s
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/couchcryptid/hko-weather-mcp/internal/adapter/hko"
	"github.com/couchcryptid/hko-weather-mcp/internal/domain"
	"github.com/couchcryptid/hko-weather-mcp/internal/observability"
)

// phase tracks pass/fail for one live check.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

type check func(ctx context.Context, client *hko.Client, p *phase)

var checks = map[string]check{
	"current":    checkCurrentWeather,
	"forecast":   checkForecast,
	"warnings":   checkWarnings,
	"radiation":  checkRadiation,
	"tides":      checkTides,
	"astro":      checkAstronomical,
	"visibility": checkVisibility,
}

func main() {
	baseURL := flag.String("base-url", "https://data.weather.gov.hk/weatherAPI/opendata", "HKO open data base URL")
	timeout := flag.Duration("timeout", 20*time.Second, "per-request timeout")
	selected := flag.String("checks", "", "comma-separated subset of checks to run (default: all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := hko.NewClient(*baseURL, *timeout, logger, observability.NewMetricsForTesting())

	names := make([]string, 0, len(checks))
	if *selected != "" {
		names = strings.Split(*selected, ",")
	} else {
		for name := range checks {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	failed := false
	for _, name := range names {
		run, ok := checks[strings.TrimSpace(name)]
		if !ok {
			fmt.Printf("FAIL %s: unknown check\n", name)
			failed = true
			continue
		}

		p := &phase{name: name}
		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		run(ctx, client, p)
		cancel()

		if p.passed() {
			fmt.Printf("PASS %s\n", p.name)
			continue
		}
		failed = true
		fmt.Printf("FAIL %s\n", p.name)
		for _, msg := range p.errors {
			fmt.Printf("     %s\n", msg)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func checkCurrentWeather(ctx context.Context, client *hko.Client, p *phase) {
	raw, err := client.CurrentWeather(ctx, "en")
	if err != nil {
		p.errorf("fetch rhrread: %v", err)
		return
	}
	if len(raw.Temperature.Data) == 0 {
		p.errorf("rhrread temperature series is empty")
	}

	normalized, err := domain.ReconcileCurrentWeather(raw, domain.DefaultPlace)
	if err != nil {
		p.errorf("reconcile: %v", err)
		return
	}
	if normalized.UpdateTime == "" {
		p.errorf("reconciled record has no updateTime")
	}
	if normalized.WeatherObservation.Temperature.Place == "" {
		p.errorf("reconciled record has no canonical place")
	}
}

func checkForecast(ctx context.Context, client *hko.Client, p *phase) {
	if _, err := client.NineDayForecast(ctx, "en"); err != nil {
		p.errorf("fetch fnd: %v", err)
	}
	if _, err := client.LocalForecast(ctx, "en"); err != nil {
		p.errorf("fetch flw: %v", err)
	}
}

func checkWarnings(ctx context.Context, client *hko.Client, p *phase) {
	if _, err := client.WarningSummary(ctx, "en"); err != nil {
		p.errorf("fetch warnsum: %v", err)
	}
	if _, err := client.SpecialTips(ctx, "en"); err != nil {
		p.errorf("fetch swt: %v", err)
	}
}

func checkRadiation(ctx context.Context, client *hko.Client, p *phase) {
	yesterday := time.Now().AddDate(0, 0, -1).Format("20060102")
	if err := domain.ValidateReportDate(yesterday); err != nil {
		p.errorf("validate %s: %v", yesterday, err)
		return
	}
	if _, err := client.RadiationReport(ctx, yesterday, "HKO", "en"); err != nil {
		p.errorf("fetch RYES for %s: %v", yesterday, err)
	}
}

func checkTides(ctx context.Context, client *hko.Client, p *phase) {
	year := time.Now().Year()
	if _, err := client.HourlyTides(ctx, "QUB", "en", hko.PeriodOptions{Year: year}); err != nil {
		p.errorf("fetch HHOT: %v", err)
	}
	if _, err := client.HighLowTides(ctx, "QUB", "en", hko.PeriodOptions{Year: year}); err != nil {
		p.errorf("fetch HLT: %v", err)
	}
}

func checkAstronomical(ctx context.Context, client *hko.Client, p *phase) {
	year := time.Now().Year()
	if _, err := client.SunriseSunsetTimes(ctx, "en", year, 0, 0); err != nil {
		p.errorf("fetch SRS: %v", err)
	}
	if _, err := client.GregorianLunarCalendar(ctx, year, 1, 1); err != nil {
		p.errorf("fetch lunardate: %v", err)
	}
}

func checkVisibility(ctx context.Context, client *hko.Client, p *phase) {
	if _, err := client.Visibility(ctx, "en"); err != nil {
		p.errorf("fetch LTMV: %v", err)
	}
	if _, err := client.LightningData(ctx, "en"); err != nil {
		p.errorf("fetch LHL: %v", err)
	}
}
