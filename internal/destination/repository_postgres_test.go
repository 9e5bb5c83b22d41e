package destination

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"explore-india/internal/db"
)

func TestPostgresRepository_SeedAndRead(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := db.ConnectPostgres(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	repo := NewPostgresRepository(pool)

	if err := repo.Seed(ctx, SampleDestinations()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// seeding twice must upsert, not fail
	if err := repo.Seed(ctx, SampleDestinations()); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	ooty, err := repo.GetByID(ctx, "ooty")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ooty.AverageBudget.Standard != 4000 {
		t.Errorf("standard = %v, want 4000", ooty.AverageBudget.Standard)
	}
	if len(ooty.TransportOptions) != 3 {
		t.Errorf("transport options = %d, want 3", len(ooty.TransportOptions))
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) < 3 {
		t.Errorf("unexpected catalog order: %d entries", len(all))
	}

	if _, err := repo.GetByID(ctx, "atlantis"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
