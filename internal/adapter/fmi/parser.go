package fmi

import (
	"encoding/xml"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// Sample is one timestamped scalar measurement within a series.
type Sample struct {
	Time  time.Time
	Value float64
}

// TimeSeries is one named point-time-series extracted from a WFS response:
// a station (name + position) carrying timestamped values of a single
// parameter.
type TimeSeries struct {
	StationName string
	Lat         float64
	Lon         float64
	HasPosition bool
	Parameter   string
	Samples     []Sample
}

// WFS response shape. Tags use local names only so the parser tolerates
// namespace-prefix differences between stored queries, and partial or
// unexpected elements simply decode to zero values rather than failing.
type featureCollection struct {
	Members []struct {
		Observation pointObservation `xml:"PointTimeSeriesObservation"`
	} `xml:"member"`
}

type pointObservation struct {
	ObservedProperty struct {
		Href string `xml:"href,attr"`
	} `xml:"observedProperty"`
	FeatureOfInterest struct {
		Feature struct {
			Shape struct {
				Point struct {
					Name string `xml:"name"`
					Pos  string `xml:"pos"`
				} `xml:"Point"`
			} `xml:"shape"`
		} `xml:"SF_SpatialSamplingFeature"`
	} `xml:"featureOfInterest"`
	Result struct {
		Timeseries struct {
			ID     string `xml:"id,attr"`
			Points []struct {
				TVP struct {
					Time  string `xml:"time"`
					Value string `xml:"value"`
				} `xml:"MeasurementTVP"`
			} `xml:"point"`
		} `xml:"MeasurementTimeseries"`
	} `xml:"result"`
}

// ParseTimeSeries extracts all point-time-series from a WFS
// timevaluepair document. Per-field tolerance: a missing station name
// becomes "Unknown", a missing or malformed position yields
// HasPosition=false (callers that supplied coordinates themselves may still
// use the series), and non-numeric or NaN sample values are dropped.
func ParseTimeSeries(r io.Reader) ([]TimeSeries, error) {
	var doc featureCollection
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	series := make([]TimeSeries, 0, len(doc.Members))
	for _, m := range doc.Members {
		series = append(series, convertSeries(m.Observation))
	}
	return series, nil
}

func convertSeries(obs pointObservation) TimeSeries {
	ts := TimeSeries{
		StationName: strings.TrimSpace(obs.FeatureOfInterest.Feature.Shape.Point.Name),
		Parameter:   seriesParameter(obs.Result.Timeseries.ID, obs.ObservedProperty.Href),
	}
	if ts.StationName == "" {
		ts.StationName = "Unknown"
	}

	if lat, lon, ok := parsePos(obs.FeatureOfInterest.Feature.Shape.Point.Pos); ok {
		ts.Lat, ts.Lon = lat, lon
		ts.HasPosition = true
	}

	for _, p := range obs.Result.Timeseries.Points {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(p.TVP.Time))
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(p.TVP.Value), 64)
		if err != nil || math.IsNaN(v) {
			continue
		}
		ts.Samples = append(ts.Samples, Sample{Time: t, Value: v})
	}
	return ts
}

// parsePos parses a GML "lat lon" position string.
func parsePos(pos string) (lat, lon float64, ok bool) {
	fields := strings.Fields(strings.TrimSpace(pos))
	if len(fields) < 2 {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(fields[0], 64)
	lon, errLon := strconv.ParseFloat(fields[1], 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// seriesParameter derives the measured parameter name from the timeseries
// gml:id suffix (e.g. "obs-obs-1-1-snow_aws" → "snow_aws"), falling back to
// the observedProperty href's param query value.
func seriesParameter(id, href string) string {
	if id != "" {
		if i := strings.LastIndex(id, "-"); i >= 0 && i < len(id)-1 {
			return id[i+1:]
		}
		return id
	}
	if i := strings.Index(href, "param="); i >= 0 {
		rest := href[i+len("param="):]
		if j := strings.IndexByte(rest, '&'); j >= 0 {
			rest = rest[:j]
		}
		return rest
	}
	return ""
}

// LatestValid returns the sample with the newest timestamp whose value lies
// in [min, max). On equal timestamps the one later in document order wins.
func LatestValid(samples []Sample, min, max float64) (Sample, bool) {
	var best Sample
	found := false
	for _, s := range samples {
		if s.Value < min || s.Value >= max {
			continue
		}
		if !found || !s.Time.Before(best.Time) {
			best = s
			found = true
		}
	}
	return best, found
}
