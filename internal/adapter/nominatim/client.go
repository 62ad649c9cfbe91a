package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lumivahti/snowload-service/internal/domain"
	"github.com/lumivahti/snowload-service/internal/observability"
)

// Client resolves Finnish postal codes to coordinates using the
// OpenStreetMap Nominatim search API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Nominatim geocoding client. Nominatim's usage policy
// requires an identifying User-Agent.
func NewClient(baseURL, userAgent string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
		metrics:    metrics,
		logger:     logger,
	}
}

// Lookup resolves a postal code scoped to Finland. The second return value
// is false when Nominatim has no candidate for the code.
func (c *Client) Lookup(ctx context.Context, postalCode string) (domain.PostalLocation, bool, error) {
	params := url.Values{
		"postalcode":   {postalCode},
		"countrycodes": {"fi"},
		"format":       {"json"},
		"limit":        {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return domain.PostalLocation{}, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues("nominatim", "error").Inc()
		return domain.PostalLocation{}, false, fmt.Errorf("nominatim request: %w", err)
	}
	defer resp.Body.Close()
	c.metrics.UpstreamDuration.WithLabelValues("nominatim").Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		c.metrics.UpstreamRequests.WithLabelValues("nominatim", "error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return domain.PostalLocation{}, false, fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		c.metrics.UpstreamRequests.WithLabelValues("nominatim", "error").Inc()
		return domain.PostalLocation{}, false, fmt.Errorf("decode response: %w", err)
	}

	if len(places) == 0 {
		c.metrics.UpstreamRequests.WithLabelValues("nominatim", "empty").Inc()
		return domain.PostalLocation{}, false, nil
	}

	// First candidate only; Nominatim orders by relevance.
	p := places[0]
	lat, errLat := strconv.ParseFloat(p.Lat, 64)
	lon, errLon := strconv.ParseFloat(p.Lon, 64)
	if errLat != nil || errLon != nil {
		c.metrics.UpstreamRequests.WithLabelValues("nominatim", "error").Inc()
		return domain.PostalLocation{}, false, fmt.Errorf("parse coordinates %q,%q", p.Lat, p.Lon)
	}

	c.metrics.UpstreamRequests.WithLabelValues("nominatim", "success").Inc()
	return domain.PostalLocation{
		PostalCode: postalCode,
		Lat:        lat,
		Lon:        lon,
		City:       cityFromDisplayName(p.DisplayName),
	}, true, nil
}

// cityFromDisplayName derives the city from the second comma-separated
// segment of a Nominatim display name, e.g.
// "70100, Kuopio, Pohjois-Savo, Finland" → "Kuopio".
func cityFromDisplayName(displayName string) string {
	parts := strings.Split(displayName, ",")
	if len(parts) < 2 {
		return "Unknown"
	}
	city := strings.TrimSpace(parts[1])
	if city == "" {
		return "Unknown"
	}
	return city
}

// place is the subset of a Nominatim search result this client reads.
type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
