package db

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestConnectPostgres(t *testing.T) {
	t.Run("missing DATABASE_URL returns an error", func(t *testing.T) {
		if _, err := ConnectPostgres(context.Background(), ""); err == nil {
			t.Fatal("expected error for empty dsn")
		}
	})

	t.Run("malformed DATABASE_URL returns an error", func(t *testing.T) {
		if _, err := ConnectPostgres(context.Background(), "postgres://%zz"); err == nil {
			t.Fatal("expected error for malformed dsn")
		}
	})

	t.Run("valid DATABASE_URL should connect", func(t *testing.T) {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			t.Skip("DATABASE_URL not set, skipping integration test")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := ConnectPostgres(ctx, dsn)
		if err != nil {
			t.Fatalf("connect: %v", err)
		}
		defer pool.Close()

		var exists bool
		err = pool.QueryRow(ctx, `SELECT to_regclass('public.destinations') IS NOT NULL`).Scan(&exists)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if !exists {
			t.Fatal("destinations table was not created")
		}
	})
}
