package domain

import "math"

// loadPerCm converts snow depth to roof load, kg/m² per cm of settled snow.
const loadPerCm = 2.5

// Status is the three-state risk classification of the current load.
type Status string

const (
	StatusSafe     Status = "safe"
	StatusModerate Status = "moderate"
	StatusCritical Status = "critical"
)

// statusLabels maps each status to its Finnish UI label.
var statusLabels = map[Status]string{
	StatusSafe:     "Turvallinen taso",
	StatusModerate: "Tarkkaile tilannetta",
	StatusCritical: "Kriittinen kuorma",
}

// statusColors maps each status to its fixed presentation color.
var statusColors = map[Status]string{
	StatusSafe:     "#4CAF50",
	StatusModerate: "#FF9800",
	StatusCritical: "#F44336",
}

// Label returns the Finnish display text for the status.
func (s Status) Label() string {
	return statusLabels[s]
}

// Color returns the presentation color for the status.
func (s Status) Color() string {
	return statusColors[s]
}

// LoadFromDepth converts a snow depth in cm to a roof load in kg/m².
func LoadFromDepth(depthCm int) int {
	return int(math.Round(float64(depthCm) * loadPerCm))
}

// LoadPercentage returns the current load as a percentage of the threshold.
func LoadPercentage(load, threshold int) float64 {
	if threshold <= 0 {
		return 0
	}
	return float64(load) / float64(threshold) * 100
}

// ClassifyLoad classifies a load against a threshold. Boundaries are closed
// at 80% (moderate) and 100% (critical).
func ClassifyLoad(load, threshold int) Status {
	pct := LoadPercentage(load, threshold)
	switch {
	case pct >= 100:
		return StatusCritical
	case pct >= 80:
		return StatusModerate
	default:
		return StatusSafe
	}
}

// HeavyWetSnowWarning reports whether the composite early-warning signal
// should fire: the roof already carries at least 60% of its threshold and
// the forecast contains at least one thaw-condition day.
func HeavyWetSnowWarning(load, threshold int, hasThawConditions bool) bool {
	return LoadPercentage(load, threshold) >= 60 && hasThawConditions
}
