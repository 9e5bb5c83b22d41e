package main

import (
	"context"
	"fmt"

	"explore-india/internal/destination"

	"github.com/spf13/cobra"
)

var flagQuery string

var destinationsCmd = &cobra.Command{
	Use:     "destinations",
	Aliases: []string{"ls"},
	Short:   "List or search catalog destinations",
	Args:    cobra.NoArgs,
	RunE:    runDestinations,
}

func init() {
	destinationsCmd.Flags().StringVar(&flagQuery, "q", "", "Search name, state or description")
	rootCmd.AddCommand(destinationsCmd)
}

func runDestinations(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	catalog, _, err := openCatalog(ctx)
	if err != nil {
		return err
	}
	defer catalog.Close()

	found, err := destination.NewService(catalog).Search(ctx, flagQuery)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Println("\n  No destinations found.")
		return nil
	}

	rows := [][]string{{"ID", "Name", "State", "Best time", "Budget / Standard / Luxury"}}
	for _, d := range found {
		b := d.AverageBudget
		rows = append(rows, []string{
			d.ID,
			d.Name,
			d.State,
			d.BestTimeToVisit,
			fmt.Sprintf("%s / %s / %s", formatRupees(b.Budget), formatRupees(b.Standard), formatRupees(b.Luxury)),
		})
	}

	fmt.Println()
	fmt.Println(renderTable(rows))
	return nil
}
