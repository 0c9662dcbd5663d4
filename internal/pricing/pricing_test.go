package pricing

import "testing"

func TestQuoteGrid(t *testing.T) {
	c := Calculator{}

	cases := []struct {
		clientType  string
		destination string
		bagCount    string
		want        float64
	}{
		{"individuel", "aeroport", "2", 49.00},
		{"famille", "domicile", "4+", 60.00},
		{"pmr", "gare", "1", 23.75},
		{"individuel", "domicile", "3", 56.00},
		{"famille", "port", "2", 39.50},
		{"pmr", "aeroport", "4+", 78.00},
	}
	for _, tc := range cases {
		got := c.Quote(tc.clientType, tc.destination, tc.bagCount, 0)
		if got != tc.want {
			t.Errorf("Quote(%s,%s,%s) = %.2f, want %.2f", tc.clientType, tc.destination, tc.bagCount, got, tc.want)
		}
	}
}

func TestQuoteUnknownFallsBack(t *testing.T) {
	c := Calculator{}

	if got := c.Quote("entreprise", "aeroport", "2", 0); got != DefaultPrice {
		t.Errorf("unknown client type: got %.2f, want %.2f", got, DefaultPrice)
	}
	if got := c.Quote("individuel", "lune", "2", 0); got != DefaultPrice {
		t.Errorf("unknown destination: got %.2f, want %.2f", got, DefaultPrice)
	}
}

func TestQuoteUnknownBagTokenCountsAsOne(t *testing.T) {
	c := Calculator{}

	want := c.Quote("individuel", "gare", "1", 0)
	if got := c.Quote("individuel", "gare", "beaucoup", 0); got != want {
		t.Errorf("unknown bag token: got %.2f, want %.2f", got, want)
	}
}

func TestQuoteDistanceSurcharge(t *testing.T) {
	c := Calculator{}

	base := c.Quote("individuel", "aeroport", "2", 0)
	if got := c.Quote("individuel", "aeroport", "2", 10); got != base {
		t.Errorf("10 km should be free, got %.2f want %.2f", got, base)
	}
	if got := c.Quote("individuel", "aeroport", "2", 15); got != base+2.50 {
		t.Errorf("15 km should add 2.50, got %.2f want %.2f", got, base+2.50)
	}
}

func TestQuoteCustomRates(t *testing.T) {
	c := Calculator{Rates: RateTable{
		"individuel": {"aeroport": {Base: 20.00, Supplement: 10.00}},
	}}

	if got := c.Quote("individuel", "aeroport", "2", 0); got != 50.00 {
		t.Errorf("custom rate: got %.2f, want 50.00", got)
	}
	// categories absent from the custom table fall back to the default price
	if got := c.Quote("famille", "aeroport", "2", 0); got != DefaultPrice {
		t.Errorf("missing category in custom table: got %.2f, want %.2f", got, DefaultPrice)
	}
}

func TestBags(t *testing.T) {
	for token, want := range map[string]int{"1": 1, "2": 2, "3": 3, "4+": 4, "": 1, "x": 1} {
		if got := Bags(token); got != want {
			t.Errorf("Bags(%q) = %d, want %d", token, got, want)
		}
	}
}
