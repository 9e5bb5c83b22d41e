package core

import (
	"context"

	"explore-india/internal/destination"
)

// CatalogReader is the read-only view of the destination catalog
// shared by the budget and admin packages.
type CatalogReader interface {
	GetByID(ctx context.Context, id string) (*destination.Destination, error)
	ListAll(ctx context.Context) ([]destination.Destination, error)
}

// ErrNotFound is returned by every CatalogReader for an unknown id.
var ErrNotFound = destination.ErrNotFound
