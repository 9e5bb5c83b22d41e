package budget

import (
	"fmt"
	"strings"
)

// Tier is an accommodation quality level.
type Tier string

const (
	TierBudget   Tier = "budget"
	TierStandard Tier = "standard"
	TierLuxury   Tier = "luxury"
)

// Tiers lists every tier from cheapest to most expensive.
var Tiers = []Tier{TierBudget, TierStandard, TierLuxury}

func (t Tier) Valid() bool {
	switch t {
	case TierBudget, TierStandard, TierLuxury:
		return true
	}
	return false
}

// ParseTier accepts a tier name in any case.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTier, s)
	}
	return t, nil
}
