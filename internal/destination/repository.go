package destination

import (
	"context"
	"errors"
)

// ErrNotFound is returned by every repository when no destination has the id.
var ErrNotFound = errors.New("destination not found")

// Repository is the destination catalog.
// The in-memory, file and Postgres stores all satisfy it.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Destination, error)
	ListAll(ctx context.Context) ([]Destination, error)
}
