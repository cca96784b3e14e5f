package geo

import (
	"strings"

	"golang.org/x/text/cases"

	"delivery-dispatch/internal/domain"
)

// Zone is a fee ring of the city.
type Zone string

// List of zones
const (
	ZoneCentral Zone = "Central"
	ZoneMid     Zone = "Mid"
	ZoneOuter   Zone = "Outer"
	ZoneDefault Zone = "Default"
)

// District is one entry of the static district table.
type District struct {
	Name     string
	Aliases  []string
	Zone     Zone
	Centroid domain.Point
}

// Order matters: the first district whose name or alias appears in an address wins.
var districts = []District{
	{Name: "Сүхбаатар", Aliases: []string{"Sukhbaatar", "Sükhbaatar"}, Zone: ZoneCentral, Centroid: domain.Point{Lat: 47.9210, Lng: 106.9185}},
	{Name: "Чингэлтэй", Aliases: []string{"Chingeltei"}, Zone: ZoneCentral, Centroid: domain.Point{Lat: 47.9300, Lng: 106.9050}},
	{Name: "Баянзүрх", Aliases: []string{"Bayanzurkh", "Bayanzürkh"}, Zone: ZoneMid, Centroid: domain.Point{Lat: 47.9150, Lng: 106.9850}},
	{Name: "Хан-Уул", Aliases: []string{"Хан Уул", "Khan-Uul", "Khan Uul"}, Zone: ZoneMid, Centroid: domain.Point{Lat: 47.8800, Lng: 106.8900}},
	{Name: "Баянгол", Aliases: []string{"Bayangol"}, Zone: ZoneMid, Centroid: domain.Point{Lat: 47.9050, Lng: 106.8550}},
	{Name: "Сонгинохайрхан", Aliases: []string{"Songinokhairkhan"}, Zone: ZoneMid, Centroid: domain.Point{Lat: 47.9300, Lng: 106.7800}},
	{Name: "Налайх", Aliases: []string{"Nalaikh"}, Zone: ZoneOuter, Centroid: domain.Point{Lat: 47.7700, Lng: 107.2550}},
	{Name: "Багануур", Aliases: []string{"Baganuur"}, Zone: ZoneOuter, Centroid: domain.Point{Lat: 47.7830, Lng: 108.3650}},
	{Name: "Багахангай", Aliases: []string{"Bagakhangai"}, Zone: ZoneOuter, Centroid: domain.Point{Lat: 47.4370, Lng: 107.4650}},
}

// Districts returns a copy of the district table.
func Districts() []District {
	out := make([]District, len(districts))
	copy(out, districts)
	return out
}

// MatchDistrict finds the first district mentioned in address, ignoring case.
func MatchDistrict(address string) (District, bool) {
	fold := cases.Fold()
	haystack := fold.String(address)
	for _, d := range districts {
		if strings.Contains(haystack, fold.String(d.Name)) {
			return d, true
		}
		for _, a := range d.Aliases {
			if strings.Contains(haystack, fold.String(a)) {
				return d, true
			}
		}
	}
	return District{}, false
}

// FoldKey normalizes an address for use as a cache key.
func FoldKey(address string) string {
	return strings.Join(strings.Fields(cases.Fold().String(address)), " ")
}
