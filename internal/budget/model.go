package budget

import "explore-india/internal/destination"

// PriceProfile is everything the estimator reads from a destination.
// Its JSON form follows the snake_case request envelope.
type PriceProfile struct {
	AverageBudget    map[Tier]float64 `json:"average_budget"`
	TransportOptions []TransportCost  `json:"transport_options"`
}

type TransportCost struct {
	Cost float64 `json:"cost"`
}

// ProfileFromDestination extracts the price profile of a catalog entry.
func ProfileFromDestination(d *destination.Destination) PriceProfile {
	transport := make([]TransportCost, 0, len(d.TransportOptions))
	for _, opt := range d.TransportOptions {
		transport = append(transport, TransportCost{Cost: opt.Cost})
	}

	return PriceProfile{
		AverageBudget: map[Tier]float64{
			TierBudget:   d.AverageBudget.Budget,
			TierStandard: d.AverageBudget.Standard,
			TierLuxury:   d.AverageBudget.Luxury,
		},
		TransportOptions: transport,
	}
}

// TripParams are the user's trip choices.
type TripParams struct {
	Days             int  `json:"days"`
	People           int  `json:"people"`
	Tier             Tier `json:"accommodation_type"`
	IncludeTransport bool `json:"include_transport"`
}

// DefaultTripParams are the calculator's initial values.
func DefaultTripParams() TripParams {
	return TripParams{
		Days:             3,
		People:           2,
		Tier:             TierStandard,
		IncludeTransport: true,
	}
}

// Validate rejects trip parameters at the request boundary.
func (p TripParams) Validate() error {
	if p.Days < 1 {
		return ErrInvalidDays
	}
	if p.People < 1 {
		return ErrInvalidPeople
	}
	if !p.Tier.Valid() {
		return ErrInvalidTier
	}
	return nil
}

// Breakdown holds the unrounded cost components.
type Breakdown struct {
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`
	Sightseeing    float64 `json:"sightseeing"`
	Transport      float64 `json:"transport"`
	LocalTransport float64 `json:"local_transport"`
	Subtotal       float64 `json:"subtotal"`
	Contingency    float64 `json:"contingency"`
}

type Estimate struct {
	Total     int64      `json:"total"`
	Breakdown Breakdown  `json:"breakdown"`
	Params    TripParams `json:"params"`
	Summary   string     `json:"summary"`
}

// Comparison is one row of a cross-destination estimate.
type Comparison struct {
	DestinationID string    `json:"destination_id"`
	Name          string    `json:"name"`
	State         string    `json:"state"`
	Estimate      *Estimate `json:"estimate"`
}
