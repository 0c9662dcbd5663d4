package pricing

import (
	"strings"

	"bagages/internal/utils"
)

// Rate is the tariff for one (client type, destination) pair: a per-bag base
// price plus a fixed destination supplement.
type Rate struct {
	Base       float64
	Supplement float64
}

// RateTable maps client type -> destination -> rate.
type RateTable map[string]map[string]Rate

// DefaultPrice is returned whenever the client type or destination is unknown.
const DefaultPrice = 50.00

// Distance beyond this threshold is billed at PerKmRate per extra km.
const (
	FreeDistanceKm = 10.0
	PerKmRate      = 0.5
)

// DefaultRates returns the built-in tariff grid. A pricing_rules table row
// overrides an entry when present (see repositories.PricingRepository).
func DefaultRates() RateTable {
	return RateTable{
		"individuel": {
			"aeroport": {Base: 17.00, Supplement: 15.00},
			"gare":     {Base: 17.00, Supplement: 8.00},
			"port":     {Base: 17.00, Supplement: 12.00},
			"domicile": {Base: 17.00, Supplement: 5.00},
		},
		"famille": {
			"aeroport": {Base: 13.75, Supplement: 15.00},
			"gare":     {Base: 13.75, Supplement: 8.00},
			"port":     {Base: 13.75, Supplement: 12.00},
			"domicile": {Base: 13.75, Supplement: 5.00},
		},
		"pmr": {
			"aeroport": {Base: 15.75, Supplement: 15.00},
			"gare":     {Base: 15.75, Supplement: 8.00},
			"port":     {Base: 15.75, Supplement: 12.00},
			"domicile": {Base: 15.75, Supplement: 5.00},
		},
	}
}

var bagMultiplier = map[string]int{
	"1":  1,
	"2":  2,
	"3":  3,
	"4+": 4,
}

// Bags converts a bag-count form token into a billable count.
// Unrecognized tokens count as a single bag.
func Bags(token string) int {
	if n, ok := bagMultiplier[strings.TrimSpace(token)]; ok {
		return n
	}
	return 1
}

// Calculator computes quotes from a rate table. The zero value uses the
// built-in grid.
type Calculator struct {
	Rates RateTable
}

func (c Calculator) rates() RateTable {
	if c.Rates != nil {
		return c.Rates
	}
	return DefaultRates()
}

// Quote returns the price for a booking, rounded to two decimals.
// Unknown client type or destination falls back to DefaultPrice without error.
func (c Calculator) Quote(clientType, destination, bagCount string, distanceKm float64) float64 {
	byDest, ok := c.rates()[strings.ToLower(strings.TrimSpace(clientType))]
	if !ok {
		return DefaultPrice
	}
	rate, ok := byDest[strings.ToLower(strings.TrimSpace(destination))]
	if !ok {
		return DefaultPrice
	}

	total := rate.Base*float64(Bags(bagCount)) + rate.Supplement
	if distanceKm > FreeDistanceKm {
		total += (distanceKm - FreeDistanceKm) * PerKmRate
	}
	if total < 0 {
		total = 0
	}
	return utils.Round2(total)
}
