package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"explore-india/internal/core"
)

var ErrDuplicate = errors.New("already exists")

// Service validates dashboard submissions against the catalog. Accepted
// payloads are logged, the catalog itself is never written.
type Service struct {
	catalog core.CatalogReader
	logger  *slog.Logger
}

func NewService(catalog core.CatalogReader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{catalog: catalog, logger: logger}
}

// --------------------------------------------------
// Destination
// --------------------------------------------------
func (s *Service) SubmitDestination(ctx context.Context, mode Mode, form DestinationForm) (*Result, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	d := form.Destination()

	if mode == ModeAdd {
		_, err := s.catalog.GetByID(ctx, d.ID)
		switch {
		case err == nil:
			return nil, fmt.Errorf("Destination with ID %q %w", d.ID, ErrDuplicate)
		case !errors.Is(err, core.ErrNotFound):
			return nil, err
		}
	}

	return s.accept(mode, "Destination", d.ID, d), nil
}

// --------------------------------------------------
// Attraction
// --------------------------------------------------
func (s *Service) SubmitAttraction(ctx context.Context, mode Mode, form AttractionForm) (*Result, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	parent, err := s.catalog.GetByID(ctx, form.DestinationID)
	if err != nil {
		return nil, err
	}

	a := form.Attraction()

	if mode == ModeAdd && parent.HasAttraction(a.ID) {
		return nil, fmt.Errorf("Attraction with ID %q %w for this destination", a.ID, ErrDuplicate)
	}

	return s.accept(mode, "Attraction", parent.ID, a), nil
}

// --------------------------------------------------
// Transport
// --------------------------------------------------
func (s *Service) SubmitTransport(ctx context.Context, mode Mode, form TransportForm) (*Result, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	parent, err := s.catalog.GetByID(ctx, form.DestinationID)
	if err != nil {
		return nil, err
	}

	return s.accept(mode, "Transport option", parent.ID, form.TransportOption()), nil
}

// --------------------------------------------------
// Accommodation
// --------------------------------------------------
func (s *Service) SubmitAccommodation(ctx context.Context, mode Mode, form AccommodationForm) (*Result, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	parent, err := s.catalog.GetByID(ctx, form.DestinationID)
	if err != nil {
		return nil, err
	}

	a := form.Accommodation()

	if mode == ModeAdd && parent.HasAccommodation(a.ID) {
		return nil, fmt.Errorf("Accommodation with ID %q %w for this destination", a.ID, ErrDuplicate)
	}

	return s.accept(mode, "Accommodation", parent.ID, a), nil
}

func (s *Service) accept(mode Mode, kind, destinationID string, data any) *Result {
	s.logger.Info("admin submission accepted",
		"kind", kind,
		"mode", mode,
		"destination_id", destinationID,
		"payload", data,
	)

	verb := "added"
	if mode == ModeEdit {
		verb = "updated"
	}

	return &Result{
		Message:       fmt.Sprintf("%s %s successfully!", kind, verb),
		Mode:          mode,
		DestinationID: destinationID,
		Data:          data,
	}
}
