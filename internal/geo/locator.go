package geo

import (
	"context"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
)

// Source tells how a target location was resolved.
type Source string

// List of location sources
const (
	SourceNone     Source = "none"
	SourceExact    Source = "exact"
	SourceGeocoded Source = "geocoded"
	SourceDistrict Source = "district"
)

// Locator resolves where a delivery goes: stored coordinates, then the geocoder, then the district centroid.
type Locator struct {
	geocoder Geocoder
	logger   logx.Logger
}

// NewLocator creates a Locator. geocoder may be nil.
func NewLocator(geocoder Geocoder, logger logx.Logger) *Locator {
	return &Locator{geocoder: geocoder, logger: logger}
}

// Locate returns the best known point for d, or nil when nothing is known.
func (l *Locator) Locate(ctx context.Context, d domain.Delivery) (*domain.Point, Source) {
	if d.DeliveryLocation != nil {
		p := *d.DeliveryLocation
		return &p, SourceExact
	}
	if l.geocoder != nil && d.DeliveryAddress != "" {
		p, err := l.geocoder.Geocode(ctx, d.DeliveryAddress)
		if err == nil {
			return &p, SourceGeocoded
		}
		l.logger.Debug("geocode failed, falling back to district",
			logx.String("event", "geocode_failed"),
			logx.Stringer("delivery_id", d.ID),
			logx.Err(err),
		)
	}
	if dist, ok := MatchDistrict(d.DeliveryAddress); ok {
		p := dist.Centroid
		return &p, SourceDistrict
	}
	return nil, SourceNone
}

// ZoneOf returns the address zone, ZoneDefault when no district matches.
func ZoneOf(address string) Zone {
	if d, ok := MatchDistrict(address); ok {
		return d.Zone
	}
	return ZoneDefault
}
