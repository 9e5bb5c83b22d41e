package destination

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// List all destinations (catalog order)
// --------------------------------------------------
func (s *Service) List(ctx context.Context) ([]Destination, error) {
	return s.repo.ListAll(ctx)
}

// --------------------------------------------------
// Get one destination
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*Destination, error) {
	return s.repo.GetByID(ctx, id)
}

// --------------------------------------------------
// Search by name, state or description
// --------------------------------------------------
// A blank term returns everything. Matching is a case-insensitive
// substring test and keeps catalog order.
func (s *Service) Search(ctx context.Context, term string) ([]Destination, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return all, nil
	}

	needle := strings.ToLower(term)
	results := make([]Destination, 0, len(all))

	for _, d := range all {
		if strings.Contains(strings.ToLower(d.Name), needle) ||
			strings.Contains(strings.ToLower(d.State), needle) ||
			strings.Contains(strings.ToLower(d.Description), needle) {
			results = append(results, d)
		}
	}

	return results, nil
}
