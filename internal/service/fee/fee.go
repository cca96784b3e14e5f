// Package fee maps a free-text delivery address to a flat zone fee.
package fee

import (
	"github.com/shopspring/decimal"

	"delivery-dispatch/internal/geo"
)

// Quote is the fee for an address.
type Quote struct {
	Fee      decimal.Decimal `json:"fee"`
	Zone     string          `json:"zone"`
	District *string         `json:"district"`
}

var zoneFees = map[geo.Zone]decimal.Decimal{
	geo.ZoneCentral: decimal.NewFromInt(3000),
	geo.ZoneMid:     decimal.NewFromInt(5000),
	geo.ZoneOuter:   decimal.NewFromInt(8000),
}

// DefaultFee applies when no district matches.
var DefaultFee = decimal.NewFromInt(5000)

// Estimate never fails: unknown addresses get the default mid-tier fee.
func Estimate(address string) Quote {
	d, ok := geo.MatchDistrict(address)
	if !ok {
		return Quote{Fee: DefaultFee, Zone: string(geo.ZoneDefault)}
	}
	name := d.Name
	return Quote{Fee: zoneFees[d.Zone], Zone: string(d.Zone), District: &name}
}
