package main

import (
	"context"
	"fmt"
	"os"

	"explore-india/internal/app"
	"explore-india/internal/budget"
	"explore-india/internal/config"

	"github.com/spf13/cobra"
)

var (
	flagSource string
	flagFile   string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:           "tripctl",
	Short:         "Explore India trip budget CLI",
	Long:          "Browse the destination catalog and estimate trip budgets from the terminal.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorText("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagSource, "source", "s", "", "Catalog source (memory, file, objectstore, postgres); defaults to CATALOG_SOURCE")
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Dataset file for the file source")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig reads the environment and applies the persistent flags.
func loadConfig() (config.Config, error) {
	if flagFile != "" {
		os.Setenv("CATALOG_FILE", flagFile)
		if flagSource == "" {
			flagSource = config.CatalogFile
		}
	}
	if flagSource != "" {
		os.Setenv("CATALOG_SOURCE", flagSource)
	}
	return config.Load()
}

// openCatalog is the shared catalog path used by all read commands.
func openCatalog(ctx context.Context) (*app.Catalog, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loading catalog from %s...\n", cfg.CatalogSource)
	}

	catalog, err := app.OpenCatalog(ctx, cfg)
	if err != nil {
		return nil, cfg, err
	}
	return catalog, cfg, nil
}

// tripFlags are shared by estimate and compare.
type tripFlags struct {
	days      int
	people    int
	tier      string
	transport bool
}

func (f *tripFlags) register(cmd *cobra.Command) {
	d := budget.DefaultTripParams()
	cmd.Flags().IntVarP(&f.days, "days", "d", d.Days, "Number of days")
	cmd.Flags().IntVarP(&f.people, "people", "p", d.People, "Number of travellers")
	cmd.Flags().StringVarP(&f.tier, "tier", "t", string(d.Tier), "Accommodation type (budget, standard, luxury)")
	cmd.Flags().BoolVar(&f.transport, "transport", d.IncludeTransport, "Include transport to the destination")
}

func (f *tripFlags) params() (budget.TripParams, error) {
	tier, err := budget.ParseTier(f.tier)
	if err != nil {
		return budget.TripParams{}, err
	}
	p := budget.TripParams{
		Days:             f.days,
		People:           f.people,
		Tier:             tier,
		IncludeTransport: f.transport,
	}
	return p, p.Validate()
}
