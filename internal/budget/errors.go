package budget

import "errors"

var (
	ErrInvalidTier           = errors.New("accommodation type must be one of budget, standard, luxury")
	ErrMissingTierRate       = errors.New("price profile has no rate for accommodation type")
	ErrNegativeRate          = errors.New("price profile rate must be a finite, non-negative number")
	ErrNegativeTransportCost = errors.New("transport cost must be a finite, non-negative number")
	ErrEstimateOverflow      = errors.New("estimate is too large")
	ErrInvalidDays           = errors.New("days must be a positive integer")
	ErrInvalidPeople         = errors.New("people must be a positive integer")
)

// IsValidationError reports whether err came from bad caller input
// rather than a catalog or internal failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTier) ||
		errors.Is(err, ErrMissingTierRate) ||
		errors.Is(err, ErrNegativeRate) ||
		errors.Is(err, ErrNegativeTransportCost) ||
		errors.Is(err, ErrEstimateOverflow) ||
		errors.Is(err, ErrInvalidDays) ||
		errors.Is(err, ErrInvalidPeople)
}
