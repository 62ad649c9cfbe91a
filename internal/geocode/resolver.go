// Package geocode turns a 5-digit Finnish postal code into coordinates and
// a city name: static table first, then a remote Nominatim lookup whose
// outcome — hit or miss — is cached for the process lifetime.
package geocode

import (
	"context"
	"log/slog"

	"github.com/lumivahti/snowload-service/internal/domain"
	"github.com/lumivahti/snowload-service/internal/observability"
)

// RemoteLookup is the geocoding fallback used on static-table misses.
// Implemented by the nominatim adapter.
type RemoteLookup interface {
	Lookup(ctx context.Context, postalCode string) (domain.PostalLocation, bool, error)
}

// Resolver maps postal codes to locations. Remote failures degrade to "not
// found"; the resolver never returns an error.
type Resolver struct {
	remote  RemoteLookup
	store   Store
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewResolver creates a Resolver. remote may be nil, in which case only the
// static table resolves.
func NewResolver(remote RemoteLookup, store Store, metrics *observability.Metrics, logger *slog.Logger) *Resolver {
	return &Resolver{
		remote:  remote,
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve returns the location for a postal code, or ok=false when the code
// is unresolvable. The caller is responsible for input format validation.
func (r *Resolver) Resolve(ctx context.Context, postalCode string) (domain.PostalLocation, bool) {
	if loc, ok := staticPostalCodes[postalCode]; ok {
		r.metrics.GeocodeLookups.WithLabelValues("static", "hit").Inc()
		return loc, true
	}

	if e, ok := r.store.Get(postalCode); ok {
		if e.Found {
			r.metrics.GeocodeLookups.WithLabelValues("cache", "hit").Inc()
			return e.Location, true
		}
		// Cached miss: short-circuit without a new network call.
		r.metrics.GeocodeLookups.WithLabelValues("cache", "miss").Inc()
		return domain.PostalLocation{}, false
	}

	if r.remote == nil {
		return domain.PostalLocation{}, false
	}

	loc, found, err := r.remote.Lookup(ctx, postalCode)
	if err != nil {
		// Degrade to not-found but do not cache: the code may resolve once
		// the upstream recovers.
		r.logger.Warn("remote geocoding failed", "postal_code", postalCode, "error", err)
		r.metrics.GeocodeLookups.WithLabelValues("remote", "error").Inc()
		return domain.PostalLocation{}, false
	}

	r.store.Put(postalCode, Entry{Location: loc, Found: found})
	if !found {
		r.metrics.GeocodeLookups.WithLabelValues("remote", "miss").Inc()
		return domain.PostalLocation{}, false
	}
	r.metrics.GeocodeLookups.WithLabelValues("remote", "hit").Inc()
	return loc, true
}
