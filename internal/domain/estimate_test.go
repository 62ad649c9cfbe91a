package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateSnowDepthCm(t *testing.T) {
	t.Run("deeper snow further north", func(t *testing.T) {
		lapland := EstimateSnowDepthCm(69.0, time.January)
		kuopio := EstimateSnowDepthCm(62.9, time.January)
		helsinki := EstimateSnowDepthCm(60.2, time.January)
		assert.Greater(t, lapland, kuopio)
		assert.Greater(t, kuopio, helsinki)
	})

	t.Run("late winter pack exceeds midwinter", func(t *testing.T) {
		assert.Greater(t, EstimateSnowDepthCm(66.5, time.March), EstimateSnowDepthCm(66.5, time.January))
	})

	t.Run("summer in the south is bare", func(t *testing.T) {
		assert.Equal(t, 0, EstimateSnowDepthCm(60.2, time.July))
	})

	t.Run("summer in Lapland keeps residual estimate", func(t *testing.T) {
		assert.Equal(t, 10, EstimateSnowDepthCm(69.0, time.July))
	})

	t.Run("november counts as winter", func(t *testing.T) {
		assert.Equal(t, EstimateSnowDepthCm(62.9, time.January), EstimateSnowDepthCm(62.9, time.November))
	})
}

func TestSyntheticForecast(t *testing.T) {
	start := time.Date(2026, time.January, 16, 0, 0, 0, 0, time.UTC)

	t.Run("always three days", func(t *testing.T) {
		days := SyntheticForecast(62.9, start, 30)
		assert.Len(t, days, 3)
	})

	t.Run("temperature wiggles around the base", func(t *testing.T) {
		days := SyntheticForecast(62.9, start, 30)
		// base -5 for lat 62.9 in January; wiggle -2, 0, +2.
		assert.Equal(t, -7, days[0].AvgTemp)
		assert.Equal(t, -5, days[1].AvgTemp)
		assert.Equal(t, -3, days[2].AvgTemp)
	})

	t.Run("winter depth trends up from seed", func(t *testing.T) {
		days := SyntheticForecast(62.9, start, 30)
		assert.Equal(t, 31, days[0].SnowDepthCm)
		assert.Equal(t, 32, days[1].SnowDepthCm)
		assert.Equal(t, 33, days[2].SnowDepthCm)
	})

	t.Run("summer melts the seed away", func(t *testing.T) {
		july := time.Date(2026, time.July, 16, 0, 0, 0, 0, time.UTC)
		days := SyntheticForecast(60.2, july, 10)
		assert.Less(t, days[2].SnowDepthCm, 10)
	})

	t.Run("no precipitation and cloudy icon", func(t *testing.T) {
		for _, day := range SyntheticForecast(62.9, start, 30) {
			assert.Equal(t, PrecipNone, day.PrecipType)
			assert.Equal(t, "0 mm", day.PrecipLabel)
			assert.Equal(t, "cloudy", day.Icon)
		}
	})

	t.Run("labels follow the calendar", func(t *testing.T) {
		days := SyntheticForecast(62.9, start, 30)
		assert.Equal(t, "perjantai", days[0].DayName) // 2026-01-16
		assert.Equal(t, "16.1.", days[0].DateLabel)
		assert.Equal(t, "17.1.", days[1].DateLabel)
	})
}
