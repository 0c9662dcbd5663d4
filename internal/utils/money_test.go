package utils

import "testing"

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		49.006:  49.01,
		62.5:    62.5,
		17.3333: 17.33,
		0:       0,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Errorf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestFormatEuro(t *testing.T) {
	if got := FormatEuro(49); got != "49.00 €" {
		t.Fatalf("unexpected format: %s", got)
	}
}
