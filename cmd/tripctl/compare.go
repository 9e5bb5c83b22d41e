package main

import (
	"context"
	"fmt"
	"strconv"

	"explore-india/internal/app"
	"explore-india/internal/budget"

	"github.com/spf13/cobra"
)

var compareFlags tripFlags

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Estimate the same trip for every destination, cheapest first",
	Args:  cobra.NoArgs,
	RunE:  runCompare,
}

func init() {
	compareFlags.register(compareCmd)
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	params, err := compareFlags.params()
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

	results, err := budget.NewService(catalog, estimator).Compare(ctx, params)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("\n  No destinations found.")
		return nil
	}

	rows := [][]string{{"#", "Destination", "State", "Total"}}
	for i, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Name,
			r.State,
			formatTotal(r.Estimate.Total),
		})
	}

	fmt.Println()
	fmt.Println(titleText(fmt.Sprintf("  %d days, %d people, %s", params.Days, params.People, params.Tier)))
	fmt.Println(renderTable(rows))
	return nil
}
