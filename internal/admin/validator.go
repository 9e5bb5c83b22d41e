package admin

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"explore-india/internal/destination"
)

var (
	transportTypes     = []string{"bus", "train", "flight", "car"}
	accommodationTypes = []string{"budget", "standard", "luxury"}
)

// ValidationError lists every rejected field with its message.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// checker collects the first failure per field.
type checker struct {
	fields map[string]string
}

func newChecker() *checker {
	return &checker{fields: make(map[string]string)}
}

func (c *checker) fail(field, msg string) {
	if _, seen := c.fields[field]; !seen {
		c.fields[field] = msg
	}
}

func (c *checker) required(field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		c.fail(field, msg)
	}
}

func (c *checker) minLen(field, value string, n int, msg string) {
	if len([]rune(strings.TrimSpace(value))) < n {
		c.fail(field, msg)
	}
}

func (c *checker) url(field, value string) {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
		c.fail(field, "Must be a valid URL")
	}
}

func (c *checker) nonNegative(field string, value *float64, msg string) {
	if value == nil || *value < 0 {
		c.fail(field, msg)
	}
}

func (c *checker) between(field string, value *float64, lo, hi float64) {
	if value == nil || *value < lo || *value > hi {
		c.fail(field, fmt.Sprintf("Rating must be between %g and %g", lo, hi))
	}
}

func (c *checker) oneOf(field, value string, allowed []string) {
	if !slices.Contains(allowed, value) {
		c.fail(field, "Must be one of "+strings.Join(allowed, ", "))
	}
}

func (c *checker) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}

// splitList splits a comma-separated field, trimming and dropping blanks.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// --------------------------------------------------
// PER-FORM RULES
// --------------------------------------------------

func (f DestinationForm) Validate() error {
	c := newChecker()
	c.required("id", f.ID, "ID is required")
	c.required("name", f.Name, "Name is required")
	c.required("state", f.State, "State is required")
	c.minLen("description", f.Description, 10, "Description is required (min 10 chars)")
	c.url("image", f.Image)
	c.required("bestTimeToVisit", f.BestTimeToVisit, "Best time to visit is required")
	c.nonNegative("budgetMin", f.BudgetMin, "Budget must be a positive number")
	c.nonNegative("budgetStandard", f.BudgetStandard, "Budget must be a positive number")
	c.nonNegative("budgetLuxury", f.BudgetLuxury, "Budget must be a positive number")
	return c.err()
}

// Destination returns the catalog shape of a validated form.
func (f DestinationForm) Destination() destination.Destination {
	return destination.Destination{
		ID:              strings.TrimSpace(f.ID),
		Name:            strings.TrimSpace(f.Name),
		State:           strings.TrimSpace(f.State),
		Description:     strings.TrimSpace(f.Description),
		Image:           strings.TrimSpace(f.Image),
		BestTimeToVisit: strings.TrimSpace(f.BestTimeToVisit),
		AverageBudget: destination.AverageBudget{
			Budget:   deref(f.BudgetMin),
			Standard: deref(f.BudgetStandard),
			Luxury:   deref(f.BudgetLuxury),
		},
	}
}

func (f AttractionForm) Validate() error {
	c := newChecker()
	c.required("destinationId", f.DestinationID, "Please select a destination")
	c.required("id", f.ID, "ID is required")
	c.required("name", f.Name, "Name is required")
	c.minLen("description", f.Description, 10, "Description is required (min 10 chars)")
	c.url("image", f.Image)
	c.nonNegative("entryFee", f.EntryFee, "Entry fee must be a positive number")
	c.required("openingHours", f.OpeningHours, "Opening hours are required")
	c.required("bestTimeToVisit", f.BestTimeToVisit, "Best time to visit is required")
	c.required("location", f.Location, "Location is required")
	c.between("rating", f.Rating, 1, 5)
	return c.err()
}

func (f AttractionForm) Attraction() destination.Attraction {
	return destination.Attraction{
		ID:              strings.TrimSpace(f.ID),
		Name:            strings.TrimSpace(f.Name),
		Description:     strings.TrimSpace(f.Description),
		Image:           strings.TrimSpace(f.Image),
		EntryFee:        deref(f.EntryFee),
		OpeningHours:    strings.TrimSpace(f.OpeningHours),
		BestTimeToVisit: strings.TrimSpace(f.BestTimeToVisit),
		Location:        strings.TrimSpace(f.Location),
		Rating:          deref(f.Rating),
	}
}

func (f TransportForm) Validate() error {
	c := newChecker()
	c.required("destinationId", f.DestinationID, "Please select a destination")
	c.oneOf("type", f.Type, transportTypes)
	c.required("from", f.From, "Origin is required")
	c.required("to", f.To, "Destination is required")
	c.required("duration", f.Duration, "Duration is required")
	c.nonNegative("cost", f.Cost, "Cost must be a positive number")
	c.required("frequency", f.Frequency, "Frequency is required")
	if len(splitList(f.Operators)) == 0 {
		c.fail("operators", "At least one operator is required")
	}
	return c.err()
}

func (f TransportForm) TransportOption() destination.TransportOption {
	return destination.TransportOption{
		Type:      f.Type,
		From:      strings.TrimSpace(f.From),
		To:        strings.TrimSpace(f.To),
		Duration:  strings.TrimSpace(f.Duration),
		Cost:      deref(f.Cost),
		Frequency: strings.TrimSpace(f.Frequency),
		Operators: splitList(f.Operators),
	}
}

func (f AccommodationForm) Validate() error {
	c := newChecker()
	c.required("destinationId", f.DestinationID, "Please select a destination")
	c.required("id", f.ID, "ID is required")
	c.required("name", f.Name, "Name is required")
	c.oneOf("type", f.Type, accommodationTypes)
	c.nonNegative("pricePerNight", f.PricePerNight, "Price must be a positive number")
	c.between("rating", f.Rating, 1, 5)
	if len(splitList(f.Amenities)) == 0 {
		c.fail("amenities", "At least one amenity is required")
	}
	c.url("image", f.Image)
	c.required("location", f.Location, "Location is required")
	return c.err()
}

func (f AccommodationForm) Accommodation() destination.Accommodation {
	return destination.Accommodation{
		ID:            strings.TrimSpace(f.ID),
		Name:          strings.TrimSpace(f.Name),
		Type:          f.Type,
		PricePerNight: deref(f.PricePerNight),
		Rating:        deref(f.Rating),
		Amenities:     splitList(f.Amenities),
		Image:         strings.TrimSpace(f.Image),
		Location:      strings.TrimSpace(f.Location),
	}
}
