package main

import (
	"context"
	"fmt"

	"explore-india/internal/app"
	"explore-india/internal/budget"

	"github.com/spf13/cobra"
)

var estimateFlags tripFlags

var estimateCmd = &cobra.Command{
	Use:   "estimate <destination-id>",
	Short: "Estimate a trip budget for one destination",
	Args:  cobra.ExactArgs(1),
	RunE:  runEstimate,
}

func init() {
	estimateFlags.register(estimateCmd)
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	params, err := estimateFlags.params()
	if err != nil {
		return err
	}

	ctx := context.Background()

	catalog, cfg, err := openCatalog(ctx)
	if err != nil {
		return err
	}
	defer catalog.Close()

	estimator, err := app.NewEstimator(cfg)
	if err != nil {
		return err
	}

	d, err := catalog.GetByID(ctx, args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	est, err := budget.NewService(catalog, estimator).EstimateForDestination(ctx, d.ID, params)
	if err != nil {
		return err
	}

	b := est.Breakdown
	rows := [][]string{
		{"Component", "Cost"},
		{"Accommodation", formatRupees(b.Accommodation)},
		{"Food", formatRupees(b.Food)},
		{"Sightseeing", formatRupees(b.Sightseeing)},
		{"Transport", formatRupees(b.Transport)},
		{"Local transport", formatRupees(b.LocalTransport)},
		{"Contingency", formatRupees(b.Contingency)},
	}

	fmt.Println()
	fmt.Println(titleText(fmt.Sprintf("  %s, %s", d.Name, d.State)))
	fmt.Println(renderTable(rows))
	fmt.Printf("  Total: %s\n", totalText(formatTotal(est.Total)))
	fmt.Println(mutedText("  " + est.Summary))
	return nil
}
