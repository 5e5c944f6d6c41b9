package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/scholarmatch/scholarmatch/internal/catalog"
	"github.com/scholarmatch/scholarmatch/internal/cli"
)

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Search the scholarship catalog",
		Long: `Search scholarships by keyword, category, or amount, without matching
against a profile. The keyword searches name, description, and category.

Examples:
  scholarmatch search STEM
  scholarmatch search --category "First Generation"
  scholarmatch search --min-amount 5000 --max-amount 10000`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().String("category", "", "Filter by category")
	cmd.Flags().Float64("min-amount", 0, "Minimum award amount")
	cmd.Flags().Float64("max-amount", 0, "Maximum award amount")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeStorage(store)

	scholarships := loadCatalog(ctx, store, time.Now())

	criteria := catalog.SearchCriteria{
		Category:  mustString(cmd, "category"),
		MinAmount: amountBound(mustFloat(cmd, "min-amount"), cmd.Flags().Changed("min-amount")),
		MaxAmount: amountBound(mustFloat(cmd, "max-amount"), cmd.Flags().Changed("max-amount")),
	}
	if len(args) > 0 {
		criteria.Query = args[0]
	}

	results := catalog.Search(scholarships, criteria)
	cli.RenderScholarships(cmd.OutOrStdout(), results)
	fmt.Fprintln(cmd.OutOrStdout(), cli.SubtleStyle.Render(
		fmt.Sprintf("%d of %d scholarships", len(results), len(scholarships))))
	return nil
}
