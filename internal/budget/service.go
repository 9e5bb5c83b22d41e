package budget

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"explore-india/internal/core"
)

type Service struct {
	catalog   core.CatalogReader
	estimator *Estimator
}

func NewService(catalog core.CatalogReader, estimator *Estimator) *Service {
	return &Service{
		catalog:   catalog,
		estimator: estimator,
	}
}

// --------------------------------------------------
// Estimate for a catalog destination
// --------------------------------------------------
// A missing destination is the catalog's error (destination.ErrNotFound).
func (s *Service) EstimateForDestination(
	ctx context.Context,
	destinationID string,
	params TripParams,
) (*Estimate, error) {

	if err := params.Validate(); err != nil {
		return nil, err
	}

	d, err := s.catalog.GetByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	return s.estimator.Estimate(ProfileFromDestination(d), params)
}

// --------------------------------------------------
// Estimate for a caller-supplied price profile
// --------------------------------------------------
func (s *Service) EstimateInline(profile PriceProfile, params TripParams) (*Estimate, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.estimator.Estimate(profile, params)
}

// --------------------------------------------------
// Same trip, every destination, cheapest first
// --------------------------------------------------
func (s *Service) Compare(ctx context.Context, params TripParams) ([]Comparison, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	all, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]Comparison, 0, len(all))

	for i := range all {
		d := &all[i]

		est, err := s.estimator.Estimate(ProfileFromDestination(d), params)
		if err != nil {
			return nil, fmt.Errorf("estimating %s: %w", d.ID, err)
		}

		rows = append(rows, Comparison{
			DestinationID: d.ID,
			Name:          d.Name,
			State:         d.State,
			Estimate:      est,
		})
	}

	slices.SortFunc(rows, func(a, b Comparison) int {
		if c := cmp.Compare(a.Estimate.Total, b.Estimate.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.DestinationID, b.DestinationID)
	})

	slog.Debug("budget comparison",
		"destinations", len(rows),
		"days", params.Days,
		"people", params.People,
		"tier", params.Tier,
	)

	return rows, nil
}
