// README: Geocoder implementation on the Google Maps Geocoding API.
package geocode

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"taxigo/internal/types"
)

// Geocoder resolves free-text queries and coordinates against a geocoding
// provider. Implementations are network-backed; the Service layers policy
// (query gating, caching, fallback labels) on top.
type Geocoder interface {
	Search(ctx context.Context, query, region string, limit int) ([]Place, error)
	Reverse(ctx context.Context, pt types.Point) (string, error)
}

type googleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder creates a Geocoder backed by the Google Maps client.
func NewGoogleGeocoder(apiKey string) (Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &googleGeocoder{client: client}, nil
}

func (g *googleGeocoder) Search(ctx context.Context, query, region string, limit int) ([]Place, error) {
	r := &maps.GeocodingRequest{
		Address: query,
		Region:  region, // bias, not a hard filter
	}
	resp, err := g.client.Geocode(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("geocoding api error: %w", err)
	}

	var results []Place
	for _, res := range resp {
		results = append(results, Place{
			Label: res.FormattedAddress,
			Point: types.Point{Lat: res.Geometry.Location.Lat, Lng: res.Geometry.Location.Lng},
		})
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}

func (g *googleGeocoder) Reverse(ctx context.Context, pt types.Point) (string, error) {
	r := &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: pt.Lat, Lng: pt.Lng},
	}
	resp, err := g.client.ReverseGeocode(ctx, r)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding api error: %w", err)
	}
	if len(resp) == 0 {
		return "", fmt.Errorf("no address found")
	}
	return resp[0].FormattedAddress, nil
}
