package geocoding

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
	"github.com/hxxtsxxh/EcoShip/internal/domain/quote"
	"github.com/hxxtsxxh/EcoShip/internal/usecase/interfaces"
)

// Gazetteer resolves locations against a compiled-in table of major US
// cities. Inline coordinates on the request always win; the table only
// backs requests that arrive with a city name.
//
// Lookup keys are lowercased "city" and "city, st". State disambiguation
// matters for names like Portland, so the two-part key is tried first.
type Gazetteer struct {
	cities map[string]entities.GeoPoint
}

var _ interfaces.IGeocoder = (*Gazetteer)(nil)

func NewGazetteer() *Gazetteer {
	return &Gazetteer{cities: defaultCityTable()}
}

func (g *Gazetteer) Resolve(_ context.Context, loc entities.Location) (entities.GeoPoint, error) {
	if loc.Coordinates != nil {
		return *loc.Coordinates, nil
	}

	city := strings.ToLower(strings.TrimSpace(loc.City))
	if city == "" {
		return entities.GeoPoint{}, fmt.Errorf("no city or coordinates given: %w", quote.ErrMissingCoordinates)
	}

	if state := strings.ToLower(strings.TrimSpace(loc.State)); state != "" {
		if pt, ok := g.cities[city+", "+state]; ok {
			return pt, nil
		}
	}
	if pt, ok := g.cities[city]; ok {
		return pt, nil
	}

	log.Printf("[geocoding][gazetteer] unknown city %q state=%q", loc.City, loc.State)
	return entities.GeoPoint{}, fmt.Errorf("city %q not in gazetteer: %w", loc.City, quote.ErrMissingCoordinates)
}

func defaultCityTable() map[string]entities.GeoPoint {
	entries := []struct {
		city  string
		state string
		pt    entities.GeoPoint
	}{
		{"New York", "NY", entities.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}},
		{"Los Angeles", "CA", entities.GeoPoint{Latitude: 34.0522, Longitude: -118.2437}},
		{"San Francisco", "CA", entities.GeoPoint{Latitude: 37.7749, Longitude: -122.4194}},
		{"Chicago", "IL", entities.GeoPoint{Latitude: 41.8781, Longitude: -87.6298}},
		{"Miami", "FL", entities.GeoPoint{Latitude: 25.7617, Longitude: -80.1918}},
		{"Seattle", "WA", entities.GeoPoint{Latitude: 47.6062, Longitude: -122.3321}},
		{"Boston", "MA", entities.GeoPoint{Latitude: 42.3601, Longitude: -71.0589}},
		{"Dallas", "TX", entities.GeoPoint{Latitude: 32.7767, Longitude: -96.7970}},
		{"Denver", "CO", entities.GeoPoint{Latitude: 39.7392, Longitude: -104.9903}},
		{"Atlanta", "GA", entities.GeoPoint{Latitude: 33.7490, Longitude: -84.3880}},
		{"Phoenix", "AZ", entities.GeoPoint{Latitude: 33.4484, Longitude: -112.0740}},
		{"Detroit", "MI", entities.GeoPoint{Latitude: 42.3314, Longitude: -83.0458}},
		{"Portland", "OR", entities.GeoPoint{Latitude: 45.5152, Longitude: -122.6784}},
		{"Houston", "TX", entities.GeoPoint{Latitude: 29.7604, Longitude: -95.3698}},
		{"Orlando", "FL", entities.GeoPoint{Latitude: 28.5383, Longitude: -81.3792}},
		{"Minneapolis", "MN", entities.GeoPoint{Latitude: 44.9778, Longitude: -93.2650}},
		{"Salt Lake City", "UT", entities.GeoPoint{Latitude: 40.7608, Longitude: -111.8910}},
		{"Philadelphia", "PA", entities.GeoPoint{Latitude: 39.9526, Longitude: -75.1652}},
		{"Nashville", "TN", entities.GeoPoint{Latitude: 36.1627, Longitude: -86.7816}},
		{"San Diego", "CA", entities.GeoPoint{Latitude: 32.7157, Longitude: -117.1611}},
		{"Charlotte", "NC", entities.GeoPoint{Latitude: 35.2271, Longitude: -80.8431}},
		{"Kansas City", "MO", entities.GeoPoint{Latitude: 39.0997, Longitude: -94.5786}},
		{"Sacramento", "CA", entities.GeoPoint{Latitude: 38.5816, Longitude: -121.4944}},
		{"Memphis", "TN", entities.GeoPoint{Latitude: 35.1495, Longitude: -90.0490}},
		{"Buffalo", "NY", entities.GeoPoint{Latitude: 42.8864, Longitude: -78.8784}},
		{"Albuquerque", "NM", entities.GeoPoint{Latitude: 35.0844, Longitude: -106.6504}},
		{"Richmond", "VA", entities.GeoPoint{Latitude: 37.5407, Longitude: -77.4360}},
		{"Milwaukee", "WI", entities.GeoPoint{Latitude: 43.0389, Longitude: -87.9065}},
	}

	table := make(map[string]entities.GeoPoint, len(entries)*2)
	for _, e := range entries {
		city := strings.ToLower(e.city)
		state := strings.ToLower(e.state)
		table[city+", "+state] = e.pt
		if _, dup := table[city]; !dup {
			table[city] = e.pt
		}
	}
	return table
}
