package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"explore-india/internal/db"
	"explore-india/internal/destination"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert the dataset (or the built-in sample) into Postgres",
	Long:  "Loads destinations from --file, or the built-in Ooty, Jaipur and Goa sample, into the destinations table at DATABASE_URL.",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required for seed")
	}

	list := destination.SampleDestinations()
	if flagFile != "" {
		if list, err = destination.LoadFile(flagFile); err != nil {
			return err
		}
	}

	ctx := context.Background()

	pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := destination.NewPostgresRepository(pool).Seed(ctx, list); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, successText(fmt.Sprintf("  Seeded %d destinations", len(list))))
	return nil
}
