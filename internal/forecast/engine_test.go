package forecast

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumivahti/snowload-service/internal/adapter/fmi"
	"github.com/lumivahti/snowload-service/internal/domain"
	"github.com/lumivahti/snowload-service/internal/observability"
)

// Frozen at midday so the window starts at the next UTC midnight,
// 2026-01-16 (a Friday).
var testNow = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

type fakeSource struct {
	series     []fmi.TimeSeries
	err        error
	start, end time.Time
	calls      int
}

func (f *fakeSource) PointForecast(_ context.Context, _, _ float64, start, end time.Time) ([]fmi.TimeSeries, error) {
	f.calls++
	f.start, f.end = start, end
	return f.series, f.err
}

func newTestEngine(source Source) *Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEngine(source, observability.NewMetricsForTesting(), logger)
}

func freezeClock(t *testing.T) {
	t.Helper()
	domain.SetClock(clockwork.NewFakeClockAt(testNow))
	t.Cleanup(func() { domain.SetClock(nil) })
}

// hourlySeries builds one parameter's samples at consecutive hours from the
// given instant.
func hourlySeries(parameter string, from time.Time, values ...float64) fmi.TimeSeries {
	samples := make([]fmi.Sample, 0, len(values))
	for i, v := range values {
		samples = append(samples, fmi.Sample{Time: from.Add(time.Duration(i) * time.Hour), Value: v})
	}
	return fmi.TimeSeries{Parameter: parameter, Samples: samples}
}

func TestForecast_BuildsThreeDaysFromModelData(t *testing.T) {
	freezeClock(t)
	day1 := time.Date(2026, time.January, 16, 6, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.January, 17, 6, 0, 0, 0, time.UTC)

	source := &fakeSource{series: []fmi.TimeSeries{
		// Cold day with light snowfall.
		hourlySeries("Temperature", day1, -5, -3, -4),
		hourlySeries("Precipitation1h", day1, 1.0, 1.5),
		hourlySeries("WeatherSymbol3", day1, 3, 41, 41),
		// Mild rainy day crossing the thaw thresholds.
		hourlySeries("Temperature", day2, 1, 3, 2),
		hourlySeries("Precipitation1h", day2, 3.0, 3.5),
		hourlySeries("WeatherSymbol3", day2, 22),
		// Unroutable parameter, must be ignored.
		hourlySeries("WindSpeedMS", day1, 12, 14),
	}}
	e := newTestEngine(source)

	fc := e.Forecast(context.Background(), 62.8933, 27.6783, 30)

	assert.Equal(t, time.Date(2026, time.January, 16, 0, 0, 0, 0, time.UTC), source.start)
	assert.Equal(t, time.Date(2026, time.January, 19, 0, 0, 0, 0, time.UTC), source.end)

	require.Len(t, fc.Days, 3)
	assert.False(t, fc.Synthetic)

	first := fc.Days[0]
	assert.Equal(t, "perjantai", first.DayName)
	assert.Equal(t, "16.1.", first.DateLabel)
	assert.Equal(t, -5, first.MinTemp)
	assert.Equal(t, -3, first.MaxTemp)
	assert.Equal(t, -4, first.AvgTemp)
	assert.Equal(t, 2.5, first.PrecipAmountMm)
	assert.Equal(t, domain.PrecipSnow, first.PrecipType)
	assert.Equal(t, "3mm lunta", first.PrecipLabel)
	assert.Equal(t, 33, first.SnowDepthCm, "30 cm seed plus 2.5 mm sub-zero accumulation")
	assert.Equal(t, "snow", first.Icon, "most frequent symbol wins over first-seen")

	second := fc.Days[1]
	assert.Equal(t, "lauantai", second.DayName)
	assert.Equal(t, domain.PrecipRain, second.PrecipType)
	assert.Equal(t, "7mm vettä", second.PrecipLabel)
	assert.Equal(t, 33, second.SnowDepthCm, "avg +2 neither accumulates nor melts")
	assert.Equal(t, "rain", second.Icon)

	require.True(t, fc.HasThawConditions)
	require.Len(t, fc.ThawConditions, 1)
	thaw := fc.ThawConditions[0]
	assert.Equal(t, "2026-01-17", thaw.Date)
	assert.Equal(t, 3.0, thaw.MaxTemp)
	assert.Equal(t, 6.5, thaw.TotalPrecip)
}

func TestForecast_FillsMissingDateSynthetically(t *testing.T) {
	freezeClock(t)
	day1 := time.Date(2026, time.January, 16, 6, 0, 0, 0, time.UTC)

	// Only the first date has samples; days two and three come from the
	// per-day synthetic fill with the depth carried forward.
	source := &fakeSource{series: []fmi.TimeSeries{
		hourlySeries("Temperature", day1, -6, -4),
		hourlySeries("Precipitation1h", day1, 2.0),
	}}
	e := newTestEngine(source)

	fc := e.Forecast(context.Background(), 62.8933, 27.6783, 30)

	require.Len(t, fc.Days, 3)
	assert.False(t, fc.Synthetic)
	assert.Equal(t, 32, fc.Days[0].SnowDepthCm)

	third := fc.Days[2]
	assert.Equal(t, "sunnuntai", third.DayName)
	assert.Equal(t, 32, third.SnowDepthCm, "missing days keep the projected depth")
	assert.Equal(t, -1, third.AvgTemp)
	assert.Equal(t, "0 mm", third.PrecipLabel)
	assert.Equal(t, "cloudy", third.Icon)
}

func TestForecast_UpstreamErrorFallsBackToSynthetic(t *testing.T) {
	freezeClock(t)
	source := &fakeSource{err: errors.New("harmonie unavailable")}
	e := newTestEngine(source)

	fc := e.Forecast(context.Background(), 62.8933, 27.6783, 30)

	assert.True(t, fc.Synthetic)
	assert.False(t, fc.HasThawConditions)
	start := time.Date(2026, time.January, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, domain.SyntheticForecast(62.8933, start, 30), fc.Days)
}

func TestForecast_EmptyResponseFallsBackToSynthetic(t *testing.T) {
	freezeClock(t)
	source := &fakeSource{}
	e := newTestEngine(source)

	fc := e.Forecast(context.Background(), 62.8933, 27.6783, 30)

	assert.True(t, fc.Synthetic)
	require.Len(t, fc.Days, 3)
}

func TestDayIcon(t *testing.T) {
	tests := []struct {
		name       string
		symbols    []int
		precipType domain.PrecipType
		want       string
	}{
		{"most frequent symbol", []int{3, 41, 41}, domain.PrecipSnow, "snow"},
		{"first seen breaks ties", []int{22, 41}, domain.PrecipSnow, "rain"},
		{"unmapped symbol falls back to precip type", []int{999}, domain.PrecipSleet, "sleet"},
		{"no symbols fall back to precip type", nil, domain.PrecipRain, "rain"},
		{"no symbols no precip", nil, domain.PrecipNone, "cloudy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dayIcon(tt.symbols, tt.precipType))
		})
	}
}

func TestStartOfTomorrow(t *testing.T) {
	helsinki := time.FixedZone("EET", 2*60*60)
	late := time.Date(2026, time.January, 16, 1, 30, 0, 0, helsinki) // 23:30 UTC on the 15th

	got := startOfTomorrow(late)

	assert.Equal(t, time.Date(2026, time.January, 16, 0, 0, 0, 0, time.UTC), got)
}
