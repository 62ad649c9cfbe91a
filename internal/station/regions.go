package station

import (
	"strings"

	"github.com/lumivahti/snowload-service/internal/domain"
)

// Region is a declarative area-override entry: a geographic predicate
// (postal-code prefixes or a lat/lon box, either may match) carrying a
// prioritized station list probed before any bounding-box search. Data only;
// the matching and probing logic lives in the locator so tests can swap
// fixture regions in.
type Region struct {
	Name           string
	PostalPrefixes []string
	Box            *Box
	Stations       []domain.Station
}

// Box is a closed lat/lon rectangle.
type Box struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

func (b *Box) contains(lat, lon float64) bool {
	return b != nil &&
		lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// Matches reports whether the region covers the query point.
func (r Region) Matches(lat, lon float64, postalCode string) bool {
	for _, prefix := range r.PostalPrefixes {
		if strings.HasPrefix(postalCode, prefix) {
			return true
		}
	}
	return r.Box.contains(lat, lon)
}

// defaultRegions are the production override lists. The Kuopio region comes
// first: it is the service-area core and its lake-studded terrain makes
// plain nearest-station selection land on unreliable island stations, hence
// the hand-picked ordering.
var defaultRegions = []Region{
	{
		Name:           "kuopio",
		PostalPrefixes: []string{"70", "71", "72"},
		Box:            &Box{MinLat: 62.6, MaxLat: 63.3, MinLon: 26.8, MaxLon: 28.4},
		Stations: []domain.Station{
			{ID: "101586", Name: "Kuopio Savilahti", Lat: 62.8924, Lon: 27.6344},
			{ID: "101572", Name: "Kuopio Maaninka", Lat: 63.1430, Lon: 27.3119},
			{ID: "101580", Name: "Kuopio Ritoniemi", Lat: 62.8018, Lon: 27.9017},
		},
	},
	{
		Name:           "helsinki",
		PostalPrefixes: []string{"00", "01", "02"},
		Box:            &Box{MinLat: 60.0, MaxLat: 60.45, MinLon: 24.4, MaxLon: 25.3},
		Stations: []domain.Station{
			{ID: "100971", Name: "Helsinki Kaisaniemi", Lat: 60.1753, Lon: 24.9446},
			{ID: "100968", Name: "Vantaa Helsinki-Vantaan lentoasema", Lat: 60.3267, Lon: 24.9570},
		},
	},
}
