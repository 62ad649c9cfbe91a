package fmi

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const observationFixture = `<?xml version="1.0" encoding="UTF-8"?>
<wfs:FeatureCollection xmlns:wfs="http://www.opengis.net/wfs/2.0"
    xmlns:gml="http://www.opengis.net/gml/3.2"
    xmlns:om="http://www.opengis.net/om/2.0"
    xmlns:omso="http://inspire.ec.europa.eu/schemas/omso/3.0"
    xmlns:sams="http://www.opengis.net/samplingSpatial/2.0"
    xmlns:wml2="http://www.opengis.net/waterml/2.0"
    xmlns:xlink="http://www.w3.org/1999/xlink">
  <wfs:member>
    <omso:PointTimeSeriesObservation gml:id="WS-1">
      <om:observedProperty xlink:href="https://opendata.fmi.fi/meta?observableProperty=observation&amp;param=snow_aws&amp;language=eng"/>
      <om:featureOfInterest>
        <sams:SF_SpatialSamplingFeature gml:id="fi-1">
          <sams:shape>
            <gml:Point gml:id="point-101586">
              <gml:name>Kuopio Savilahti</gml:name>
              <gml:pos>62.8924 27.6344</gml:pos>
            </gml:Point>
          </sams:shape>
        </sams:SF_SpatialSamplingFeature>
      </om:featureOfInterest>
      <om:result>
        <wml2:MeasurementTimeseries gml:id="obs-obs-1-1-snow_aws">
          <wml2:point>
            <wml2:MeasurementTVP>
              <wml2:time>2026-01-14T06:00:00Z</wml2:time>
              <wml2:value>41.0</wml2:value>
            </wml2:MeasurementTVP>
          </wml2:point>
          <wml2:point>
            <wml2:MeasurementTVP>
              <wml2:time>2026-01-15T06:00:00Z</wml2:time>
              <wml2:value>43.0</wml2:value>
            </wml2:MeasurementTVP>
          </wml2:point>
          <wml2:point>
            <wml2:MeasurementTVP>
              <wml2:time>2026-01-15T07:00:00Z</wml2:time>
              <wml2:value>NaN</wml2:value>
            </wml2:MeasurementTVP>
          </wml2:point>
        </wml2:MeasurementTimeseries>
      </om:result>
    </omso:PointTimeSeriesObservation>
  </wfs:member>
  <wfs:member>
    <omso:PointTimeSeriesObservation gml:id="WS-2">
      <om:featureOfInterest>
        <sams:SF_SpatialSamplingFeature gml:id="fi-2">
          <sams:shape>
            <gml:Point gml:id="point-unknown">
              <gml:pos>not numeric</gml:pos>
            </gml:Point>
          </sams:shape>
        </sams:SF_SpatialSamplingFeature>
      </om:featureOfInterest>
      <om:result>
        <wml2:MeasurementTimeseries gml:id="obs-obs-1-2-snow_aws">
          <wml2:point>
            <wml2:MeasurementTVP>
              <wml2:time>2026-01-15T06:00:00Z</wml2:time>
              <wml2:value>12.0</wml2:value>
            </wml2:MeasurementTVP>
          </wml2:point>
        </wml2:MeasurementTimeseries>
      </om:result>
    </omso:PointTimeSeriesObservation>
  </wfs:member>
</wfs:FeatureCollection>`

func TestParseTimeSeries(t *testing.T) {
	series, err := ParseTimeSeries(strings.NewReader(observationFixture))
	require.NoError(t, err)
	require.Len(t, series, 2)

	t.Run("full series", func(t *testing.T) {
		ts := series[0]
		assert.Equal(t, "Kuopio Savilahti", ts.StationName)
		assert.True(t, ts.HasPosition)
		assert.Equal(t, 62.8924, ts.Lat)
		assert.Equal(t, 27.6344, ts.Lon)
		assert.Equal(t, "snow_aws", ts.Parameter)
		// The NaN sample is dropped.
		require.Len(t, ts.Samples, 2)
		assert.Equal(t, 41.0, ts.Samples[0].Value)
		assert.Equal(t, 43.0, ts.Samples[1].Value)
	})

	t.Run("series without name or position", func(t *testing.T) {
		ts := series[1]
		assert.Equal(t, "Unknown", ts.StationName)
		assert.False(t, ts.HasPosition)
		require.Len(t, ts.Samples, 1)
	})
}

func TestParseTimeSeries_Malformed(t *testing.T) {
	_, err := ParseTimeSeries(strings.NewReader("<wfs:FeatureCollection"))
	require.Error(t, err)
}

func TestParseTimeSeries_Empty(t *testing.T) {
	series, err := ParseTimeSeries(strings.NewReader(`<?xml version="1.0"?><FeatureCollection></FeatureCollection>`))
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestLatestValid(t *testing.T) {
	t1 := time.Date(2026, 1, 14, 6, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 1, 15, 6, 0, 0, 0, time.UTC)

	t.Run("picks latest in-range sample", func(t *testing.T) {
		s, ok := LatestValid([]Sample{
			{Time: t2, Value: 43},
			{Time: t1, Value: 41},
		}, 0, 500)
		require.True(t, ok)
		assert.Equal(t, 43.0, s.Value)
	})

	t.Run("filters out-of-range values", func(t *testing.T) {
		s, ok := LatestValid([]Sample{
			{Time: t1, Value: 41},
			{Time: t2, Value: 600}, // above range
			{Time: t2, Value: -1},  // below range
		}, 0, 500)
		require.True(t, ok)
		assert.Equal(t, 41.0, s.Value)
	})

	t.Run("upper bound is exclusive", func(t *testing.T) {
		_, ok := LatestValid([]Sample{{Time: t1, Value: 500}}, 0, 500)
		assert.False(t, ok)
	})

	t.Run("zero is valid", func(t *testing.T) {
		s, ok := LatestValid([]Sample{{Time: t1, Value: 0}}, 0, 500)
		require.True(t, ok)
		assert.Equal(t, 0.0, s.Value)
	})

	t.Run("equal timestamps favor later document order", func(t *testing.T) {
		s, ok := LatestValid([]Sample{
			{Time: t2, Value: 10},
			{Time: t2, Value: 20},
		}, 0, 500)
		require.True(t, ok)
		assert.Equal(t, 20.0, s.Value)
	})

	t.Run("no valid samples", func(t *testing.T) {
		_, ok := LatestValid(nil, 0, 500)
		assert.False(t, ok)
	})
}

func TestSeriesParameter(t *testing.T) {
	assert.Equal(t, "snow_aws", seriesParameter("obs-obs-1-1-snow_aws", ""))
	assert.Equal(t, "Temperature", seriesParameter("mts-1-1-Temperature", ""))
	assert.Equal(t, "snow_aws", seriesParameter("", "https://x?observable=y&param=snow_aws&lang=eng"))
	assert.Equal(t, "", seriesParameter("", ""))
}
