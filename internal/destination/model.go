package destination

// Destination is a catalog entry shown on the detail page
// and read by the budget estimator.
type Destination struct {
	ID               string            `json:"id" yaml:"id"`
	Name             string            `json:"name" yaml:"name"`
	State            string            `json:"state" yaml:"state"`
	Description      string            `json:"description" yaml:"description"`
	Image            string            `json:"image" yaml:"image"`
	Attractions      []Attraction      `json:"attractions" yaml:"attractions"`
	TransportOptions []TransportOption `json:"transportOptions" yaml:"transportOptions"`
	Accommodations   []Accommodation   `json:"accommodations" yaml:"accommodations"`
	Weather          Weather           `json:"weather" yaml:"weather"`
	BestTimeToVisit  string            `json:"bestTimeToVisit" yaml:"bestTimeToVisit"`
	AverageBudget    AverageBudget     `json:"averageBudget" yaml:"averageBudget"`
}

// AverageBudget is the nightly rate per accommodation tier.
type AverageBudget struct {
	Budget   float64 `json:"budget" yaml:"budget"`
	Standard float64 `json:"standard" yaml:"standard"`
	Luxury   float64 `json:"luxury" yaml:"luxury"`
}

type Attraction struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Description     string  `json:"description" yaml:"description"`
	Image           string  `json:"image" yaml:"image"`
	EntryFee        float64 `json:"entryFee" yaml:"entryFee"`
	OpeningHours    string  `json:"openingHours" yaml:"openingHours"`
	BestTimeToVisit string  `json:"bestTimeToVisit" yaml:"bestTimeToVisit"`
	Location        string  `json:"location" yaml:"location"`
	Rating          float64 `json:"rating" yaml:"rating"`
}

// TransportOption is one way of reaching the destination.
// Type is bus | train | flight | car.
type TransportOption struct {
	Type      string   `json:"type" yaml:"type"`
	From      string   `json:"from" yaml:"from"`
	To        string   `json:"to" yaml:"to"`
	Duration  string   `json:"duration" yaml:"duration"`
	Cost      float64  `json:"cost" yaml:"cost"`
	Frequency string   `json:"frequency" yaml:"frequency"`
	Operators []string `json:"operators" yaml:"operators"`
}

// Accommodation Type is budget | standard | luxury.
type Accommodation struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Type          string   `json:"type" yaml:"type"`
	PricePerNight float64  `json:"pricePerNight" yaml:"pricePerNight"`
	Rating        float64  `json:"rating" yaml:"rating"`
	Amenities     []string `json:"amenities" yaml:"amenities"`
	Image         string   `json:"image" yaml:"image"`
	Location      string   `json:"location" yaml:"location"`
}

type Weather struct {
	Summer  Season `json:"summer" yaml:"summer"`
	Winter  Season `json:"winter" yaml:"winter"`
	Monsoon Season `json:"monsoon" yaml:"monsoon"`
}

type Season struct {
	Temperature string `json:"temperature" yaml:"temperature"`
	Conditions  string `json:"conditions" yaml:"conditions"`
}

// Summary is the card shown in listings and search results.
type Summary struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	State           string        `json:"state"`
	Description     string        `json:"description"`
	Image           string        `json:"image"`
	BestTimeToVisit string        `json:"bestTimeToVisit"`
	AverageBudget   AverageBudget `json:"averageBudget"`
}

func (d *Destination) Summary() Summary {
	return Summary{
		ID:              d.ID,
		Name:            d.Name,
		State:           d.State,
		Description:     d.Description,
		Image:           d.Image,
		BestTimeToVisit: d.BestTimeToVisit,
		AverageBudget:   d.AverageBudget,
	}
}

// HasAttraction reports whether an attraction with id exists.
func (d *Destination) HasAttraction(id string) bool {
	for _, a := range d.Attractions {
		if a.ID == id {
			return true
		}
	}
	return false
}

func (d *Destination) HasAccommodation(id string) bool {
	for _, a := range d.Accommodations {
		if a.ID == id {
			return true
		}
	}
	return false
}
