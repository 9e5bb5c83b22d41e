package budget

import (
	"errors"
	"fmt"
	"math"
)

// Rates are the fixed per-trip assumptions of the estimator.
type Rates struct {
	// FoodMultipliers scale the accommodation cost into a food cost.
	FoodMultipliers            map[Tier]float64
	SightseeingPerPersonDay    float64
	LocalTransportPerPersonDay float64
	// Contingency multiplies the summed components (1.1 = 10% buffer).
	Contingency float64
}

func DefaultRates() Rates {
	return Rates{
		FoodMultipliers: map[Tier]float64{
			TierBudget:   0.2,
			TierStandard: 0.3,
			TierLuxury:   0.4,
		},
		SightseeingPerPersonDay:    500,
		LocalTransportPerPersonDay: 300,
		Contingency:                1.1,
	}
}

func (r Rates) Validate() error {
	for _, t := range Tiers {
		m, ok := r.FoodMultipliers[t]
		if !ok {
			return fmt.Errorf("rates: missing food multiplier for %s", t)
		}
		if !nonNegative(m) {
			return fmt.Errorf("rates: food multiplier for %s must be a finite, non-negative number", t)
		}
	}
	if !nonNegative(r.SightseeingPerPersonDay) || !nonNegative(r.LocalTransportPerPersonDay) {
		return errors.New("rates: per person per day costs must be finite and not negative")
	}
	if !nonNegative(r.Contingency) || r.Contingency == 0 {
		return errors.New("rates: contingency must be a finite, positive number")
	}
	return nil
}

// nonNegative is false for NaN and infinities.
func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

// Estimator turns a price profile and trip parameters into a total.
// It holds no state besides its rates and is safe for concurrent use.
type Estimator struct {
	rates Rates
}

func NewEstimator(rates Rates) (*Estimator, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Estimator{rates: rates}, nil
}

// NewDefaultEstimator uses DefaultRates.
func NewDefaultEstimator() *Estimator {
	return &Estimator{rates: DefaultRates()}
}

func (e *Estimator) Rates() Rates {
	return e.rates
}

// Estimate computes the trip cost. Days and people below 1 are clamped to 1;
// callers that want them rejected should call TripParams.Validate first.
func (e *Estimator) Estimate(profile PriceProfile, params TripParams) (*Estimate, error) {
	if !params.Tier.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTier, params.Tier)
	}

	nightly, ok := profile.AverageBudget[params.Tier]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrMissingTierRate, params.Tier)
	}
	if !nonNegative(nightly) {
		return nil, fmt.Errorf("%w: %s = %v", ErrNegativeRate, params.Tier, nightly)
	}

	params.Days = max(params.Days, 1)
	params.People = max(params.People, 1)

	days := float64(params.Days)
	people := float64(params.People)

	var b Breakdown

	// accommodation does not scale with party size
	b.Accommodation = nightly * days
	b.Food = b.Accommodation * e.rates.FoodMultipliers[params.Tier]
	b.Sightseeing = e.rates.SightseeingPerPersonDay * people * days

	if params.IncludeTransport {
		cheapest, err := cheapestTransport(profile.TransportOptions)
		if err != nil {
			return nil, err
		}
		b.Transport = cheapest * people
	}

	b.LocalTransport = e.rates.LocalTransportPerPersonDay * people * days

	b.Subtotal = b.Accommodation + b.Food + b.Sightseeing + b.Transport + b.LocalTransport
	total := b.Subtotal * e.rates.Contingency
	b.Contingency = total - b.Subtotal

	rounded := math.Round(total)
	// float64(math.MaxInt64) rounds up to 2^63, which does not fit
	if math.IsNaN(rounded) || rounded >= math.MaxInt64 {
		return nil, ErrEstimateOverflow
	}

	return &Estimate{
		Total:     int64(rounded),
		Breakdown: b,
		Params:    params,
		Summary:   summarize(params),
	}, nil
}

// cheapestTransport returns the lowest option cost; no options cost nothing.
func cheapestTransport(options []TransportCost) (float64, error) {
	if len(options) == 0 {
		return 0, nil
	}

	cheapest := options[0].Cost
	for _, opt := range options {
		if !nonNegative(opt.Cost) {
			return 0, fmt.Errorf("%w: %v", ErrNegativeTransportCost, opt.Cost)
		}
		cheapest = min(cheapest, opt.Cost)
	}
	return cheapest, nil
}

func summarize(p TripParams) string {
	s := fmt.Sprintf(
		"This is an approximate estimate for %d %s and %d %s with %s accommodation",
		p.Days, plural(p.Days, "day", "days"),
		p.People, plural(p.People, "person", "people"),
		p.Tier,
	)
	if p.IncludeTransport {
		s += ", including transport to the destination"
	}
	return s + "."
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
