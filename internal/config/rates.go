package config

import (
	"fmt"
	"os"

	"explore-india/internal/budget"

	"github.com/BurntSushi/toml"
)

// RatesFile is the TOML document read from RATES_FILE.
type RatesFile struct {
	Rates RatesOverrides `toml:"rates"`
}

// RatesOverrides replaces individual estimator constants. Nil keeps the default.
type RatesOverrides struct {
	SightseeingPerPersonDay    *float64        `toml:"sightseeing_per_person_day,omitempty"`
	LocalTransportPerPersonDay *float64        `toml:"local_transport_per_person_day,omitempty"`
	Contingency                *float64        `toml:"contingency,omitempty"`
	FoodMultipliers            FoodMultipliers `toml:"food_multipliers,omitempty"`
}

type FoodMultipliers struct {
	Budget   *float64 `toml:"budget,omitempty"`
	Standard *float64 `toml:"standard,omitempty"`
	Luxury   *float64 `toml:"luxury,omitempty"`
}

// Apply returns base with every set override applied. base is not modified.
func (o RatesOverrides) Apply(base budget.Rates) budget.Rates {
	out := base
	out.FoodMultipliers = make(map[budget.Tier]float64, len(base.FoodMultipliers))
	for k, v := range base.FoodMultipliers {
		out.FoodMultipliers[k] = v
	}

	if o.SightseeingPerPersonDay != nil {
		out.SightseeingPerPersonDay = *o.SightseeingPerPersonDay
	}
	if o.LocalTransportPerPersonDay != nil {
		out.LocalTransportPerPersonDay = *o.LocalTransportPerPersonDay
	}
	if o.Contingency != nil {
		out.Contingency = *o.Contingency
	}
	if o.FoodMultipliers.Budget != nil {
		out.FoodMultipliers[budget.TierBudget] = *o.FoodMultipliers.Budget
	}
	if o.FoodMultipliers.Standard != nil {
		out.FoodMultipliers[budget.TierStandard] = *o.FoodMultipliers.Standard
	}
	if o.FoodMultipliers.Luxury != nil {
		out.FoodMultipliers[budget.TierLuxury] = *o.FoodMultipliers.Luxury
	}

	return out
}

// LoadRates returns the default rates with the overrides in path applied.
// An empty path returns the defaults.
func LoadRates(path string) (budget.Rates, error) {
	rates := budget.DefaultRates()
	if path == "" {
		return rates, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rates, fmt.Errorf("reading rates file: %w", err)
	}

	return ParseRates(data)
}

// ParseRates decodes a TOML rates document on top of the defaults.
func ParseRates(data []byte) (budget.Rates, error) {
	var file RatesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return budget.DefaultRates(), fmt.Errorf("parsing rates file: %w", err)
	}

	rates := file.Rates.Apply(budget.DefaultRates())
	if err := rates.Validate(); err != nil {
		return budget.DefaultRates(), err
	}
	return rates, nil
}
