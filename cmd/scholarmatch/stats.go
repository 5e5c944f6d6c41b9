package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/scholarmatch/scholarmatch/internal/catalog"
	"github.com/scholarmatch/scholarmatch/internal/cli"
	"github.com/scholarmatch/scholarmatch/internal/model"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Long:  `Show totals for the stored scholarship catalog: counts, funding, categories, and urgent deadlines.`,
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeStorage(store)

	stats := catalog.Statistics(loadCatalog(ctx, store, time.Now()))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.TitleStyle.Render("Catalog Statistics"))
	fmt.Fprintf(out, "  Scholarships:     %d\n", stats.TotalScholarships)
	fmt.Fprintf(out, "  Total funding:    %s\n",
		cli.SuccessStyle.Render(model.NewAmount(stats.TotalFunding).Display()))
	fmt.Fprintf(out, "  Average amount:   %s\n", model.NewAmount(stats.AverageAmount).Display())
	fmt.Fprintf(out, "  Urgent (<30d):    %d\n", stats.UrgentDeadlines)

	if len(stats.Categories) > 0 {
		fmt.Fprintln(out, cli.SubtleStyle.Render("  By category:"))
		categories := make([]string, 0, len(stats.Categories))
		for c := range stats.Categories {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			fmt.Fprintf(out, "    %-24s %d\n", c, stats.Categories[c])
		}
	}
	return nil
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer closeStorage(store)

			for _, c := range catalog.Categories(loadCatalog(ctx, store, time.Now())) {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
