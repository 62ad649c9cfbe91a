// Package forecast projects the next three days of snow load: it windows a
// Harmonie point forecast from the start of tomorrow, buckets intraday
// samples per calendar date, types the precipitation, walks the snowpack
// forward day by day, and flags thaw-condition days. Upstream failure at any
// stage degrades to the seasonal synthetic forecast; the engine never fails.
package forecast

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/lumivahti/snowload-service/internal/adapter/fmi"
	"github.com/lumivahti/snowload-service/internal/domain"
	"github.com/lumivahti/snowload-service/internal/observability"
)

const forecastDays = 3

// Source fetches forecast time series. Implemented by the fmi adapter.
type Source interface {
	PointForecast(ctx context.Context, lat, lon float64, start, end time.Time) ([]fmi.TimeSeries, error)
}

// Engine builds the 3-day forecast.
type Engine struct {
	source  Source
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewEngine creates an Engine.
func NewEngine(source Source, metrics *observability.Metrics, logger *slog.Logger) *Engine {
	return &Engine{source: source, metrics: metrics, logger: logger}
}

// dayBucket collects one calendar date's intraday samples.
type dayBucket struct {
	temps   []float64
	precip  []float64
	symbols []int
}

// Forecast returns exactly three ForecastDay entries starting tomorrow,
// seeding the snow accumulation projection from the current depth.
func (e *Engine) Forecast(ctx context.Context, lat, lon float64, seedDepthCm int) domain.Forecast {
	start := startOfTomorrow(domain.Now())
	end := start.AddDate(0, 0, forecastDays)

	series, err := e.source.PointForecast(ctx, lat, lon, start, end)
	if err != nil {
		e.logger.Warn("forecast fetch failed, using synthetic forecast", "error", err)
		return e.synthetic(lat, start, seedDepthCm)
	}

	buckets := bucketByDate(series)
	if len(buckets) == 0 {
		e.logger.Warn("forecast response had no usable samples, using synthetic forecast")
		return e.synthetic(lat, start, seedDepthCm)
	}

	var (
		days  = make([]domain.ForecastDay, 0, forecastDays)
		thaws []domain.ThawCondition
		depth = float64(seedDepthCm)
	)
	for i := 0; i < forecastDays; i++ {
		date := start.AddDate(0, 0, i)
		bucket := buckets[dateKey(date)]
		if bucket == nil || len(bucket.temps) == 0 {
			days = append(days, syntheticDay(lat, date, i, depth))
			continue
		}

		day, thaw, nextDepth := buildDay(date, bucket, depth)
		depth = nextDepth
		days = append(days, day)
		if thaw != nil {
			thaws = append(thaws, *thaw)
		}
	}

	return domain.Forecast{
		Days:              days,
		HasThawConditions: len(thaws) > 0,
		ThawConditions:    thaws,
	}
}

func (e *Engine) synthetic(lat float64, start time.Time, seedDepthCm int) domain.Forecast {
	e.metrics.ForecastFallbacks.Inc()
	return domain.Forecast{
		Days:      domain.SyntheticForecast(lat, start, seedDepthCm),
		Synthetic: true,
	}
}

// buildDay aggregates one bucketed calendar date into a ForecastDay, the
// thaw condition if the day qualifies, and the projected depth carried into
// the next day.
func buildDay(date time.Time, b *dayBucket, depthCm float64) (domain.ForecastDay, *domain.ThawCondition, float64) {
	minT, maxT, avgT := tempStats(b.temps)

	var total float64
	for _, p := range b.precip {
		total += p
	}
	total = round1(total)

	precipType := domain.ClassifyPrecipitation(total, minT, maxT, avgT)
	nextDepth := domain.NextSnowDepth(depthCm, avgT, total)

	day := domain.ForecastDay{
		Date:           date,
		DayName:        domain.DayName(date),
		DateLabel:      domain.DateLabel(date),
		SnowDepthCm:    int(math.Round(nextDepth)),
		MinTemp:        int(math.Round(minT)),
		MaxTemp:        int(math.Round(maxT)),
		AvgTemp:        int(math.Round(avgT)),
		PrecipAmountMm: total,
		PrecipType:     precipType,
		PrecipLabel:    domain.PrecipitationLabel(total, precipType),
		Icon:           dayIcon(b.symbols, precipType),
	}

	var thaw *domain.ThawCondition
	if domain.IsThawDay(maxT, total) {
		thaw = &domain.ThawCondition{
			Date:        dateKey(date),
			MaxTemp:     round1(maxT),
			TotalPrecip: total,
		}
	}
	return day, thaw, nextDepth
}

// syntheticDay fills a date the model response skipped, keeping the
// accumulated depth running.
func syntheticDay(lat float64, date time.Time, dayIndex int, depthCm float64) domain.ForecastDay {
	temp := domain.SyntheticDayTemp(lat, dayIndex)
	return domain.ForecastDay{
		Date:           date,
		DayName:        domain.DayName(date),
		DateLabel:      domain.DateLabel(date),
		SnowDepthCm:    int(math.Round(depthCm)),
		MinTemp:        int(math.Round(temp - 1)),
		MaxTemp:        int(math.Round(temp + 1)),
		AvgTemp:        int(math.Round(temp)),
		PrecipAmountMm: 0,
		PrecipType:     domain.PrecipNone,
		PrecipLabel:    "0 mm",
		Icon:           "cloudy",
	}
}

// bucketByDate splits every series' samples into per-calendar-date buckets,
// routing each series by its declared parameter.
func bucketByDate(series []fmi.TimeSeries) map[string]*dayBucket {
	buckets := make(map[string]*dayBucket)
	get := func(t time.Time) *dayBucket {
		key := dateKey(t)
		b := buckets[key]
		if b == nil {
			b = &dayBucket{}
			buckets[key] = b
		}
		return b
	}

	for _, ts := range series {
		kind := classifyParameter(ts.Parameter)
		if kind == paramUnknown {
			continue
		}
		for _, s := range ts.Samples {
			b := get(s.Time)
			switch kind {
			case paramTemperature:
				b.temps = append(b.temps, s.Value)
			case paramPrecipitation:
				b.precip = append(b.precip, s.Value)
			case paramSymbol:
				b.symbols = append(b.symbols, int(s.Value))
			}
		}
	}
	return buckets
}

type paramKind int

const (
	paramUnknown paramKind = iota
	paramTemperature
	paramPrecipitation
	paramSymbol
)

func classifyParameter(name string) paramKind {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "temp") || n == "t2m":
		return paramTemperature
	case strings.Contains(n, "precipitation"):
		return paramPrecipitation
	case strings.Contains(n, "symbol"):
		return paramSymbol
	default:
		return paramUnknown
	}
}

// dayIcon picks the most frequent weather symbol of the day, first-seen
// order breaking ties, falling back to the precipitation type when the
// symbol is absent or unmapped.
func dayIcon(symbols []int, precipType domain.PrecipType) string {
	counts := make(map[int]int, len(symbols))
	var order []int
	for _, code := range symbols {
		if counts[code] == 0 {
			order = append(order, code)
		}
		counts[code]++
	}

	best, bestCount := 0, 0
	for _, code := range order {
		if counts[code] > bestCount {
			best, bestCount = code, counts[code]
		}
	}
	if bestCount > 0 {
		if icon, ok := domain.IconForSymbol(best); ok {
			return icon
		}
	}
	return domain.IconForPrecip(precipType)
}

func tempStats(temps []float64) (minT, maxT, avgT float64) {
	minT, maxT = temps[0], temps[0]
	var sum float64
	for _, t := range temps {
		if t < minT {
			minT = t
		}
		if t > maxT {
			maxT = t
		}
		sum += t
	}
	return minT, maxT, sum / float64(len(temps))
}

// startOfTomorrow truncates to the next UTC midnight.
func startOfTomorrow(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
