// Package domain models roof snow load data derived from FMI open data.
//
// # Data Sources
//
// Snow depth observations and point forecasts come from the Finnish
// Meteorological Institute (FMI) open data WFS service at
// https://opendata.fmi.fi/wfs, queried through stored queries that return
// point-time-series XML (wfs:member > PointTimeSeriesObservation):
//
//	fmi::observations::weather::timevaluepair          parameter snow_aws (cm)
//	fmi::forecast::harmonie::surface::point::timevaluepair
//	    parameters Temperature (°C), Precipitation1h (mm), WeatherSymbol3
//
// Postal codes resolve through a hand-curated table of Finnish postal codes,
// falling back to OpenStreetMap Nominatim scoped to Finland.
//
// # Snow Load Conventions
//
// Load is derived from measured snow depth with a fixed density assumption:
//
//	load (kg/m²) = round(depth_cm * 2.5)
//
// 2.5 kg/m² per cm corresponds to settled snow at roughly 250 kg/m³, the
// figure used by Finnish rescue services for roof-clearing guidance. The
// threshold is roof-type specific and supplied by the caller; typical values
// run from 100 kg/m² (old flat roofs) to 180 kg/m² (modern pitched roofs).
//
// Risk classification is a pure function of load/threshold:
//
//	>= 100%          critical
//	>=  80% < 100%   moderate
//	<   80%          safe
//
// # Thaw Hazard
//
// Wet snow is the dangerous kind: a near-freezing day with heavy
// precipitation can waterlog an existing snowpack and add weight far faster
// than snowfall alone. A forecast day with max temperature >= 1 °C and total
// precipitation >= 5 mm is recorded as a thaw condition, and the heavy wet
// snow warning fires when such a day exists while the roof already carries
// 60% or more of its threshold load.
//
// # Validity Windows
//
// Snow depth readings outside [0, 500) cm are sensor anomalies and are
// dropped during selection. Observations older than seven days are never
// requested. When no station or forecast data is reachable, coarse
// latitude/month lookup tables stand in so the pipeline always produces a
// usable result.
package domain
