package geo

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"

	"delivery-dispatch/internal/domain"
)

// ErrNoResult means the geocoder knows no location for the address.
var ErrNoResult = errors.New("geocode: no result")

// Geocoder resolves a free-text address to a point.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Point, error)
}

type mapsClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GoogleGeocoder geocodes through the Google Maps Geocoding API.
type GoogleGeocoder struct {
	client mapsClient
	region string
}

// NewGoogleGeocoder creates a geocoder for apiKey biased to region.
func NewGoogleGeocoder(apiKey, region string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleGeocoder{client: client, region: region}, nil
}

// Geocode returns the first result's location.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (domain.Point, error) {
	res, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address, Region: g.region})
	if err != nil {
		return domain.Point{}, fmt.Errorf("geocode: %w", err)
	}
	if len(res) == 0 {
		return domain.Point{}, ErrNoResult
	}
	loc := res[0].Geometry.Location
	return domain.Point{Lat: loc.Lat, Lng: loc.Lng}, nil
}
