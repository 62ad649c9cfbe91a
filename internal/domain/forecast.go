package domain

import (
	"fmt"
	"math"
	"time"
)

// Thaw-condition thresholds: a day at or above both turns lying snow into
// waterlogged snow.
const (
	thawMaxTempC = 1.0
	thawPrecipMm = 5.0
)

// finnishDayNames indexes time.Weekday (Sunday = 0).
var finnishDayNames = [7]string{
	"sunnuntai", "maanantai", "tiistai", "keskiviikko", "torstai", "perjantai", "lauantai",
}

// finnishPrecipWords gives the partitive precipitation word used in labels.
var finnishPrecipWords = map[PrecipType]string{
	PrecipSnow:  "lunta",
	PrecipRain:  "vettä",
	PrecipSleet: "räntää",
}

// ClassifyPrecipitation decides a day's precipitation type from its
// temperature envelope. Priority order matters: the clear-cut cases
// (all-frozen, all-warm, straddling zero) are checked before falling back to
// the daily average.
func ClassifyPrecipitation(totalPrecip, minTemp, maxTemp, avgTemp float64) PrecipType {
	switch {
	case totalPrecip <= 0:
		return PrecipNone
	case maxTemp < -1:
		return PrecipSnow
	case minTemp > 2:
		return PrecipRain
	case maxTemp > 0 && minTemp < 0:
		return PrecipSleet
	case avgTemp <= 0:
		return PrecipSnow
	case avgTemp >= 2:
		return PrecipRain
	default:
		return PrecipSleet
	}
}

// PrecipitationLabel renders a Finnish display label for a day's
// precipitation. Trace amounts (< 0.1 mm) show as "0 mm"; amounts up to one
// millimetre render as a range because the model's small totals are noisy.
func PrecipitationLabel(amount float64, t PrecipType) string {
	if t == PrecipNone || amount < 0.1 {
		return "0 mm"
	}
	word := finnishPrecipWords[t]
	if amount <= 1 {
		upper := int(math.Ceil(amount))
		if upper < 1 {
			upper = 1
		}
		return fmt.Sprintf("0–%dmm %s", upper, word)
	}
	return fmt.Sprintf("%dmm %s", int(math.Round(amount)), word)
}

// NextSnowDepth projects the snowpack one day forward: sub-zero
// precipitation accumulates, warm days melt at 2 cm per degree above +2 °C,
// anything else leaves the pack unchanged. Depth never goes negative.
func NextSnowDepth(depthCm, avgTemp, totalPrecip float64) float64 {
	switch {
	case avgTemp < 0 && totalPrecip > 0:
		return depthCm + totalPrecip
	case avgTemp > 2:
		next := depthCm - (avgTemp-2)*2
		if next < 0 {
			return 0
		}
		return next
	default:
		return depthCm
	}
}

// IsThawDay reports whether a forecast day meets the thaw condition:
// max temperature >= 1 °C and total precipitation >= 5 mm, both inclusive.
func IsThawDay(maxTemp, totalPrecip float64) bool {
	return maxTemp >= thawMaxTempC && totalPrecip >= thawPrecipMm
}

// DayName returns the Finnish weekday name.
func DayName(t time.Time) string {
	return finnishDayNames[t.Weekday()]
}

// DateLabel renders the short Finnish date form, e.g. "2.1.".
func DateLabel(t time.Time) string {
	return fmt.Sprintf("%d.%d.", t.Day(), int(t.Month()))
}

// symbolIcons maps FMI WeatherSymbol3 codes to UI icon names. Shower
// variants share the icon of their steady counterparts.
var symbolIcons = map[int]string{
	1: "clear", 2: "partly-cloudy", 3: "cloudy",
	21: "rain", 22: "rain", 23: "rain",
	31: "rain", 32: "rain", 33: "rain",
	41: "snow", 42: "snow", 43: "snow",
	51: "snow", 52: "snow", 53: "snow",
	61: "thunder", 62: "thunder", 63: "thunder", 64: "thunder",
	71: "sleet", 72: "sleet", 73: "sleet",
	81: "sleet", 82: "sleet", 83: "sleet",
	91: "fog", 92: "fog",
}

// IconForSymbol maps a weather symbol code to an icon name.
func IconForSymbol(code int) (string, bool) {
	icon, ok := symbolIcons[code]
	return icon, ok
}

// IconForPrecip is the secondary signal when the day's symbol is absent or
// unmapped.
func IconForPrecip(t PrecipType) string {
	switch t {
	case PrecipSnow:
		return "snow"
	case PrecipRain:
		return "rain"
	case PrecipSleet:
		return "sleet"
	default:
		return "cloudy"
	}
}
