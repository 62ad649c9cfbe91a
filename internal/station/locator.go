// Package station finds the best snow depth reading for a coordinate:
// area-specific override stations first, then a radius-expanding
// bounding-box search, finally a seasonal estimate. The locator never fails;
// every upstream or parse error just moves it down one tier.
package station

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/lumivahti/snowload-service/internal/adapter/fmi"
	"github.com/lumivahti/snowload-service/internal/domain"
	"github.com/lumivahti/snowload-service/internal/observability"
)

const (
	lookbackWindow = 7 * 24 * time.Hour

	// Snow depth validity window, cm. Values outside are sensor anomalies.
	minValidDepthCm = 0
	maxValidDepthCm = 500
)

// searchRadiiKm are the expanding bounding-box tiers.
var searchRadiiKm = []float64{25, 50}

// ObservationSource fetches snow depth series. Implemented by the fmi
// adapter.
type ObservationSource interface {
	SnowDepthByBBox(ctx context.Context, box fmi.BBox, start, end time.Time) ([]fmi.TimeSeries, error)
	SnowDepthByStation(ctx context.Context, fmisID string, start, end time.Time) ([]fmi.TimeSeries, error)
}

// Locator resolves the most recent valid snow depth near a coordinate.
type Locator struct {
	source  ObservationSource
	regions []Region
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewLocator creates a Locator with the production override regions.
func NewLocator(source ObservationSource, metrics *observability.Metrics, logger *slog.Logger) *Locator {
	return NewLocatorWithRegions(source, defaultRegions, metrics, logger)
}

// NewLocatorWithRegions creates a Locator with custom override regions.
// Test hook.
func NewLocatorWithRegions(source ObservationSource, regions []Region, metrics *observability.Metrics, logger *slog.Logger) *Locator {
	return &Locator{
		source:  source,
		regions: regions,
		metrics: metrics,
		logger:  logger,
	}
}

// Locate runs the fallback chain and always returns a usable reading.
func (l *Locator) Locate(ctx context.Context, lat, lon float64, postalCode string) domain.SnowReading {
	if reading, ok := l.fromOverrides(ctx, lat, lon, postalCode); ok {
		l.metrics.StationSearchTier.WithLabelValues("override").Inc()
		return reading
	}

	for _, radius := range searchRadiiKm {
		if reading, ok := l.fromBBoxSearch(ctx, lat, lon, radius); ok {
			l.metrics.StationSearchTier.WithLabelValues(tierLabel(radius)).Inc()
			return reading
		}
	}

	l.metrics.StationSearchTier.WithLabelValues("estimate").Inc()
	depth := domain.EstimateSnowDepthCm(lat, domain.Now().Month())
	l.logger.Warn("no station within search radius, using seasonal estimate",
		"lat", lat, "lon", lon, "postal_code", postalCode, "depth_cm", depth)
	return domain.SnowReading{DepthCm: depth, Estimated: true}
}

// fromOverrides probes the first matching region's stations in priority
// order; the first station with a valid reading wins.
func (l *Locator) fromOverrides(ctx context.Context, lat, lon float64, postalCode string) (domain.SnowReading, bool) {
	for _, region := range l.regions {
		if !region.Matches(lat, lon, postalCode) {
			continue
		}
		for _, st := range region.Stations {
			reading, ok := l.probeStation(ctx, st, lat, lon)
			if ok {
				return reading, true
			}
		}
		// Overrides matched but produced nothing; fall through to search.
		return domain.SnowReading{}, false
	}
	return domain.SnowReading{}, false
}

func (l *Locator) probeStation(ctx context.Context, st domain.Station, lat, lon float64) (domain.SnowReading, bool) {
	end := domain.Now()
	series, err := l.source.SnowDepthByStation(ctx, st.ID, end.Add(-lookbackWindow), end)
	if err != nil {
		l.logger.Warn("station probe failed", "station", st.Name, "error", err)
		return domain.SnowReading{}, false
	}

	for _, ts := range series {
		sample, ok := fmi.LatestValid(ts.Samples, minValidDepthCm, maxValidDepthCm)
		if !ok {
			continue
		}
		// Station coordinates are known from the override list; a missing
		// position in the response does not disqualify the series.
		station := st
		if ts.HasPosition {
			station.Lat, station.Lon = ts.Lat, ts.Lon
		}
		observedAt := sample.Time
		return domain.SnowReading{
			DepthCm:    int(math.Round(sample.Value)),
			Station:    &station,
			DistanceKm: math.Round(domain.DistanceKm(lat, lon, station.Lat, station.Lon)),
			ObservedAt: &observedAt,
		}, true
	}
	return domain.SnowReading{}, false
}

// fromBBoxSearch queries all stations inside the radius-derived box and
// picks the closest one holding a valid measurement — closest, not first.
func (l *Locator) fromBBoxSearch(ctx context.Context, lat, lon, radiusKm float64) (domain.SnowReading, bool) {
	end := domain.Now()
	series, err := l.source.SnowDepthByBBox(ctx, boundingBox(lat, lon, radiusKm), end.Add(-lookbackWindow), end)
	if err != nil {
		l.logger.Warn("bounding-box search failed", "radius_km", radiusKm, "error", err)
		return domain.SnowReading{}, false
	}

	var (
		best         domain.SnowReading
		bestDistance = math.MaxFloat64
		found        bool
	)
	for _, ts := range series {
		if !ts.HasPosition {
			// No way to rank a station we cannot place.
			continue
		}
		sample, ok := fmi.LatestValid(ts.Samples, minValidDepthCm, maxValidDepthCm)
		if !ok {
			continue
		}
		distance := domain.DistanceKm(lat, lon, ts.Lat, ts.Lon)
		if distance > radiusKm || distance >= bestDistance {
			continue
		}
		observedAt := sample.Time
		bestDistance = distance
		best = domain.SnowReading{
			DepthCm: int(math.Round(sample.Value)),
			Station: &domain.Station{
				Name: ts.StationName,
				Lat:  ts.Lat,
				Lon:  ts.Lon,
			},
			DistanceKm: math.Round(distance),
			ObservedAt: &observedAt,
		}
		found = true
	}
	return best, found
}

// boundingBox converts a radius around a point into a degree box:
// one degree of latitude is ~111 km, one degree of longitude shrinks with
// the cosine of the latitude.
func boundingBox(lat, lon, radiusKm float64) fmi.BBox {
	latDelta := radiusKm / 111
	lonDelta := radiusKm / (111 * math.Cos(lat*math.Pi/180))
	return fmi.BBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLon: lon - lonDelta,
		MaxLon: lon + lonDelta,
	}
}

func tierLabel(radiusKm float64) string {
	if radiusKm <= 25 {
		return "bbox25"
	}
	return "bbox50"
}
