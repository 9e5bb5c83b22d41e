package main

import (
	"math"
	"testing"
)

func TestGroupThousands(t *testing.T) {
	tests := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		22880:   "22,880",
		1234567: "1,234,567",
		-4500:   "-4,500",
		-999:    "-999",

		math.MaxInt64: "9,223,372,036,854,775,807",
		math.MinInt64: "-9,223,372,036,854,775,808",
	}
	for in, want := range tests {
		if got := groupThousands(in); got != want {
			t.Errorf("groupThousands(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestTripFlags_Params(t *testing.T) {
	f := tripFlags{days: 3, people: 2, tier: "Luxury", transport: false}

	p, err := f.params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Tier != "luxury" || p.IncludeTransport {
		t.Fatalf("unexpected params %+v", p)
	}

	f.days = 0
	if _, err := f.params(); err == nil {
		t.Fatal("expected error for zero days")
	}
}
