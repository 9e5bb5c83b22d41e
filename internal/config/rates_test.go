package config

import (
	"os"
	"path/filepath"
	"testing"

	"explore-india/internal/budget"
)

func TestParseRates_PartialOverride(t *testing.T) {
	rates, err := ParseRates([]byte(`
[rates]
contingency = 1.2

[rates.food_multipliers]
luxury = 0.5
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rates.Contingency != 1.2 {
		t.Errorf("contingency = %v, want 1.2", rates.Contingency)
	}
	if rates.FoodMultipliers[budget.TierLuxury] != 0.5 {
		t.Errorf("luxury multiplier = %v, want 0.5", rates.FoodMultipliers[budget.TierLuxury])
	}
	if rates.FoodMultipliers[budget.TierStandard] != 0.3 {
		t.Errorf("standard multiplier changed to %v", rates.FoodMultipliers[budget.TierStandard])
	}
	if rates.SightseeingPerPersonDay != 500 {
		t.Errorf("sightseeing = %v, want default 500", rates.SightseeingPerPersonDay)
	}
}

func TestParseRates_ZeroIsAnOverride(t *testing.T) {
	rates, err := ParseRates([]byte("[rates]\nlocal_transport_per_person_day = 0\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates.LocalTransportPerPersonDay != 0 {
		t.Errorf("local transport = %v, want 0", rates.LocalTransportPerPersonDay)
	}
}

func TestParseRates_Invalid(t *testing.T) {
	if _, err := ParseRates([]byte("[rates\n")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := ParseRates([]byte("[rates]\ncontingency = -1\n")); err == nil {
		t.Error("expected validation error for negative contingency")
	}

	for _, doc := range []string{
		"[rates]\ncontingency = nan\n",
		"[rates]\ncontingency = inf\n",
		"[rates]\nsightseeing_per_person_day = nan\n",
		"[rates.food_multipliers]\nluxury = inf\n",
	} {
		if _, err := ParseRates([]byte(doc)); err == nil {
			t.Errorf("expected validation error for %q", doc)
		}
	}
}

func TestApply_DoesNotMutateBase(t *testing.T) {
	base := budget.DefaultRates()
	half := 0.5

	_ = RatesOverrides{FoodMultipliers: FoodMultipliers{Budget: &half}}.Apply(base)

	if base.FoodMultipliers[budget.TierBudget] != 0.2 {
		t.Fatalf("base was modified: %v", base.FoodMultipliers[budget.TierBudget])
	}
}

func TestLoadRates(t *testing.T) {
	rates, err := LoadRates("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates.Contingency != 1.1 {
		t.Errorf("contingency = %v, want default", rates.Contingency)
	}

	path := filepath.Join(t.TempDir(), "rates.toml")
	if err := os.WriteFile(path, []byte("[rates]\nsightseeing_per_person_day = 750\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	rates, err = LoadRates(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates.SightseeingPerPersonDay != 750 {
		t.Errorf("sightseeing = %v, want 750", rates.SightseeingPerPersonDay)
	}

	if _, err := LoadRates(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
