package repositories

import (
	"database/sql"

	intconfig "bagages/internal/config"
	"bagages/internal/pricing"
)

// PricingRepository loads tariff overrides from the pricing_rules table.
// One active rule per (client_type, destination); rows replace the built-in
// grid entry for their pair, anything else keeps the defaults.
type PricingRepository struct {
	DB *sql.DB
}

func (r PricingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// LoadRates merges active pricing_rules rows over the default grid.
func (r PricingRepository) LoadRates() (pricing.RateTable, error) {
	rates := pricing.DefaultRates()

	rows, err := r.db().Query(`
		SELECT client_type, destination, base_price, supplement
		FROM pricing_rules
		WHERE is_active = 1`)
	if err != nil {
		return rates, err
	}
	defer rows.Close()

	for rows.Next() {
		var clientType, destination string
		var base, supplement float64
		if err := rows.Scan(&clientType, &destination, &base, &supplement); err != nil {
			return rates, err
		}
		byDest, ok := rates[clientType]
		if !ok {
			byDest = map[string]pricing.Rate{}
			rates[clientType] = byDest
		}
		byDest[destination] = pricing.Rate{Base: base, Supplement: supplement}
	}
	return rates, rows.Err()
}
