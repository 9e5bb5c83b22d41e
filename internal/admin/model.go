package admin

// Mode is how a form submission treats an existing id.
type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

// --------------------------------------------------
// FORM PAYLOADS
// --------------------------------------------------
// Numbers are pointers so a missing field is told apart from zero.

type DestinationForm struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	State           string   `json:"state"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	BudgetMin       *float64 `json:"budgetMin"`
	BudgetStandard  *float64 `json:"budgetStandard"`
	BudgetLuxury    *float64 `json:"budgetLuxury"`
}

type AttractionForm struct {
	DestinationID   string   `json:"destinationId"`
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	EntryFee        *float64 `json:"entryFee"`
	OpeningHours    string   `json:"openingHours"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	Location        string   `json:"location"`
	Rating          *float64 `json:"rating"`
}

// TransportForm carries operators as one comma-separated string.
type TransportForm struct {
	DestinationID string   `json:"destinationId"`
	Type          string   `json:"type"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	Duration      string   `json:"duration"`
	Cost          *float64 `json:"cost"`
	Frequency     string   `json:"frequency"`
	Operators     string   `json:"operators"`
}

// AccommodationForm carries amenities as one comma-separated string.
type AccommodationForm struct {
	DestinationID string   `json:"destinationId"`
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	PricePerNight *float64 `json:"pricePerNight"`
	Rating        *float64 `json:"rating"`
	Amenities     string   `json:"amenities"`
	Image         string   `json:"image"`
	Location      string   `json:"location"`
}

// --------------------------------------------------
// RESULT
// --------------------------------------------------

// Result is the accepted submission echoed back to the dashboard.
type Result struct {
	Message       string `json:"message"`
	Mode          Mode   `json:"mode"`
	DestinationID string `json:"destinationId"`
	Data          any    `json:"data"`
}
