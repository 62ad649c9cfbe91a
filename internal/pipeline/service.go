// Package pipeline orchestrates the snow-data resolution chain: postal code
// → coordinates → station reading → load classification → forecast → final
// result. GetSnowData is the only operation the UI/notification layer needs.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/lumivahti/snowload-service/internal/domain"
	"github.com/lumivahti/snowload-service/internal/observability"
)

// ErrPostalCodeNotFound is the only error GetSnowData returns: the postal
// code could not be resolved by the static table or remote geocoding. All
// other failure modes degrade into fallback data.
var ErrPostalCodeNotFound = errors.New("postal code not found")

// Resolver maps a postal code to a location. Implemented by geocode.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, postalCode string) (domain.PostalLocation, bool)
}

// StationLocator finds the best snow reading for a coordinate. Implemented
// by station.Locator.
type StationLocator interface {
	Locate(ctx context.Context, lat, lon float64, postalCode string) domain.SnowReading
}

// Forecaster builds the 3-day forecast. Implemented by forecast.Engine.
type Forecaster interface {
	Forecast(ctx context.Context, lat, lon float64, seedDepthCm int) domain.Forecast
}

// WarningPublisher hands active heavy-wet-snow warnings to the out-of-scope
// notification layer. Implemented by the kafka adapter; may be nil.
type WarningPublisher interface {
	PublishWarning(ctx context.Context, w domain.WarningEvent) error
}

// Service is the external-facing snow data pipeline.
type Service struct {
	resolver   Resolver
	locator    StationLocator
	forecaster Forecaster
	publisher  WarningPublisher
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// New creates a Service. publisher may be nil to disable warning events.
func New(resolver Resolver, locator StationLocator, forecaster Forecaster, publisher WarningPublisher, metrics *observability.Metrics, logger *slog.Logger) *Service {
	return &Service{
		resolver:   resolver,
		locator:    locator,
		forecaster: forecaster,
		publisher:  publisher,
		metrics:    metrics,
		logger:     logger,
	}
}

// CheckReadiness reports service readiness. The pipeline holds no state and
// is ready as soon as it is constructed; upstream outages degrade to
// fallback data rather than unreadiness.
func (s *Service) CheckReadiness(_ context.Context) error {
	return nil
}

// GetSnowData resolves the postal code and assembles the full snow load
// result. It returns ErrPostalCodeNotFound for unresolvable codes and never
// propagates upstream failures.
func (s *Service) GetSnowData(ctx context.Context, postalCode string, threshold int) (domain.SnowDataResult, error) {
	start := time.Now()

	loc, ok := s.resolver.Resolve(ctx, postalCode)
	if !ok {
		s.metrics.RequestsTotal.WithLabelValues("not_found").Inc()
		return domain.SnowDataResult{}, ErrPostalCodeNotFound
	}

	reading := s.locator.Locate(ctx, loc.Lat, loc.Lon, postalCode)
	load := domain.LoadFromDepth(reading.DepthCm)
	status := domain.ClassifyLoad(load, threshold)

	fc := s.forecaster.Forecast(ctx, loc.Lat, loc.Lon, reading.DepthCm)
	warning := domain.HeavyWetSnowWarning(load, threshold, fc.HasThawConditions)

	refDistance := math.Round(domain.DistanceFromReferenceKm(loc.Lat, loc.Lon)*10) / 10

	result := domain.SnowDataResult{
		CurrentLoad:         load,
		SnowDepthCm:         reading.DepthCm,
		Threshold:           threshold,
		Status:              status,
		StatusText:          status.Label(),
		StatusColor:         status.Color(),
		Forecast:            fc.Days,
		City:                loc.City,
		PostalCode:          loc.PostalCode,
		DistanceFromRefKm:   refDistance,
		IsWithinServiceArea: refDistance <= domain.ServiceRadiusKm,
		HeavyWetSnowWarning: warning,
		ThawConditions:      fc.ThawConditions,
		Station:             stationInfo(reading),
	}

	if warning {
		s.metrics.WarningsIssued.Inc()
		s.publishWarning(ctx, result)
	}

	s.metrics.RequestsTotal.WithLabelValues("ok").Inc()
	s.metrics.RequestDuration.Observe(time.Since(start).Seconds())
	return result, nil
}

func (s *Service) publishWarning(ctx context.Context, result domain.SnowDataResult) {
	if s.publisher == nil {
		return
	}
	event := domain.WarningEvent{
		PostalCode:     result.PostalCode,
		City:           result.City,
		CurrentLoad:    result.CurrentLoad,
		Threshold:      result.Threshold,
		ThawConditions: result.ThawConditions,
		IssuedAt:       domain.Now(),
	}
	// The warning is advisory; a publish failure must not fail the request.
	if err := s.publisher.PublishWarning(ctx, event); err != nil {
		s.logger.Warn("warning publish failed", "postal_code", result.PostalCode, "error", err)
	}
}

func stationInfo(reading domain.SnowReading) domain.StationInfo {
	info := domain.StationInfo{Estimated: reading.Estimated}
	if reading.Station != nil {
		name := reading.Station.Name
		distance := reading.DistanceKm
		info.Name = &name
		info.DistanceKm = &distance
	}
	if reading.ObservedAt != nil {
		observedAt := *reading.ObservedAt
		info.ObservedAt = &observedAt
		info.UpdatedAgo = domain.HumanizeUpdatedAgo(observedAt, domain.Now())
	}
	return info
}
