// Package fmi is the adapter for the Finnish Meteorological Institute open
// data WFS service: stored-query HTTP client plus a tolerant parser for the
// point-time-series XML both observation and forecast queries return.
package fmi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/lumivahti/snowload-service/internal/observability"
)

const (
	observationQuery = "fmi::observations::weather::timevaluepair"
	forecastQuery    = "fmi::forecast::harmonie::surface::point::timevaluepair"

	snowDepthParam  = "snow_aws"
	forecastParams  = "Temperature,Precipitation1h,WeatherSymbol3"
	wfsTimeFormat   = "2006-01-02T15:04:05Z"
	metricsObsLabel = "fmi_observation"
	metricsFctLabel = "fmi_forecast"
)

// BBox is a geographic bounding box in degrees.
type BBox struct {
	MinLat, MinLon, MaxLat, MaxLon float64
}

func (b BBox) queryValue() string {
	// WFS bbox order is lon,lat,lon,lat.
	return fmt.Sprintf("%.4f,%.4f,%.4f,%.4f", b.MinLon, b.MinLat, b.MaxLon, b.MaxLat)
}

// Client queries FMI open data stored queries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an FMI WFS client.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		metrics:    metrics,
		logger:     logger,
	}
}

// SnowDepthByBBox fetches snow depth observation series for all stations in
// the box over the given window.
func (c *Client) SnowDepthByBBox(ctx context.Context, box BBox, start, end time.Time) ([]TimeSeries, error) {
	params := url.Values{
		"bbox":       {box.queryValue()},
		"parameters": {snowDepthParam},
	}
	return c.fetchSeries(ctx, observationQuery, metricsObsLabel, params, start, end)
}

// SnowDepthByStation fetches snow depth observation series for a single
// station identified by its FMI station id.
func (c *Client) SnowDepthByStation(ctx context.Context, fmisID string, start, end time.Time) ([]TimeSeries, error) {
	params := url.Values{
		"fmisid":     {fmisID},
		"parameters": {snowDepthParam},
	}
	return c.fetchSeries(ctx, observationQuery, metricsObsLabel, params, start, end)
}

// PointForecast fetches the Harmonie surface model temperature, hourly
// precipitation, and weather symbol series for a coordinate.
func (c *Client) PointForecast(ctx context.Context, lat, lon float64, start, end time.Time) ([]TimeSeries, error) {
	params := url.Values{
		"latlon":     {fmt.Sprintf("%.4f,%.4f", lat, lon)},
		"parameters": {forecastParams},
	}
	return c.fetchSeries(ctx, forecastQuery, metricsFctLabel, params, start, end)
}

func (c *Client) fetchSeries(ctx context.Context, query, service string, params url.Values, start, end time.Time) ([]TimeSeries, error) {
	params.Set("service", "WFS")
	params.Set("version", "2.0.0")
	params.Set("request", "getFeature")
	params.Set("storedquery_id", query)
	params.Set("starttime", start.UTC().Format(wfsTimeFormat))
	params.Set("endtime", end.UTC().Format(wfsTimeFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	begin := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(service, "error").Inc()
		return nil, fmt.Errorf("%s request: %w", service, err)
	}
	defer resp.Body.Close()
	c.metrics.UpstreamDuration.WithLabelValues(service).Observe(time.Since(begin).Seconds())

	if resp.StatusCode != http.StatusOK {
		c.metrics.UpstreamRequests.WithLabelValues(service, "error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fmi API error: status %d: %s", resp.StatusCode, body)
	}

	series, err := ParseTimeSeries(resp.Body)
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues(service, "error").Inc()
		return nil, fmt.Errorf("parse %s response: %w", service, err)
	}

	if len(series) == 0 {
		c.metrics.UpstreamRequests.WithLabelValues(service, "empty").Inc()
	} else {
		c.metrics.UpstreamRequests.WithLabelValues(service, "success").Inc()
	}
	return series, nil
}
