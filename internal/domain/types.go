package domain

import "time"

// PostalLocation is a resolved 5-digit Finnish postal code.
type PostalLocation struct {
	PostalCode string  `json:"postal_code"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	City       string  `json:"city"`
}

// Station is a weather observation station, either from a hardcoded
// priority list or discovered via bounding-box search. Never persisted;
// re-resolved on every request.
type Station struct {
	ID   string  `json:"id,omitempty"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// SnowReading is the station locator's output: the most recent valid snow
// depth for the best reachable station, or a seasonal estimate when no
// station within 50 km yields data.
type SnowReading struct {
	DepthCm    int
	Station    *Station   // nil when estimated
	DistanceKm float64    // from query point; meaningful only when Station != nil
	ObservedAt *time.Time // nil when estimated
	Estimated  bool
}

// PrecipType classifies a forecast day's precipitation.
type PrecipType string

const (
	PrecipNone  PrecipType = "none"
	PrecipSnow  PrecipType = "snow"
	PrecipRain  PrecipType = "rain"
	PrecipSleet PrecipType = "sleet"
)

// ForecastDay is one projected day, derived from aggregating intraday
// temperature/precipitation samples for a calendar date.
type ForecastDay struct {
	Date           time.Time  `json:"date"`
	DayName        string     `json:"day_name"`
	DateLabel      string     `json:"date_label"`
	SnowDepthCm    int        `json:"snow_depth_cm"`
	MinTemp        int        `json:"min_temp"`
	MaxTemp        int        `json:"max_temp"`
	AvgTemp        int        `json:"avg_temp"`
	PrecipAmountMm float64    `json:"precip_amount_mm"`
	PrecipType     PrecipType `json:"precip_type"`
	PrecipLabel    string     `json:"precip_label"`
	Icon           string     `json:"icon"`
}

// ThawCondition records a forecast day warm and wet enough to waterlog the
// snowpack.
type ThawCondition struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	MaxTemp     float64 `json:"max_temp"`
	TotalPrecip float64 `json:"total_precip_mm"`
}

// Forecast is the forecast engine's output.
type Forecast struct {
	Days              []ForecastDay   `json:"days"`
	HasThawConditions bool            `json:"has_thaw_conditions"`
	ThawConditions    []ThawCondition `json:"thaw_conditions,omitempty"`
	Synthetic         bool            `json:"synthetic,omitempty"`
}

// StationInfo is the station metadata exposed in the final result. Fields
// are pointers because an estimated reading carries no station.
type StationInfo struct {
	Name       *string    `json:"name"`
	DistanceKm *float64   `json:"distance_km"`
	ObservedAt *time.Time `json:"observed_at"`
	UpdatedAgo string     `json:"updated_ago,omitempty"`
	Estimated  bool       `json:"estimated"`
}

// WarningEvent is the heavy-wet-snow warning signal handed to the external
// notification layer. Deduplication ("was this warning already shown")
// belongs to that layer, not here.
type WarningEvent struct {
	PostalCode     string          `json:"postal_code"`
	City           string          `json:"city"`
	CurrentLoad    int             `json:"current_load"`
	Threshold      int             `json:"threshold"`
	ThawConditions []ThawCondition `json:"thaw_conditions"`
	IssuedAt       time.Time       `json:"issued_at"`
}

// SnowDataResult is the aggregate returned to the UI/notification layer.
// Request-scoped; never persisted.
type SnowDataResult struct {
	CurrentLoad         int             `json:"current_load"`
	SnowDepthCm         int             `json:"snow_depth_cm"`
	Threshold           int             `json:"threshold"`
	Status              Status          `json:"status"`
	StatusText          string          `json:"status_text"`
	StatusColor         string          `json:"status_color"`
	Forecast            []ForecastDay   `json:"forecast"`
	City                string          `json:"city"`
	PostalCode          string          `json:"postal_code"`
	DistanceFromRefKm   float64         `json:"distance_from_reference_km"`
	IsWithinServiceArea bool            `json:"is_within_service_area"`
	HeavyWetSnowWarning bool            `json:"heavy_wet_snow_warning"`
	ThawConditions      []ThawCondition `json:"thaw_conditions,omitempty"`
	Station             StationInfo     `json:"station"`
}
