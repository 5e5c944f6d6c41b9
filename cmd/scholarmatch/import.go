package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/scholarmatch/scholarmatch/internal/catalog"
	"github.com/scholarmatch/scholarmatch/internal/cli"
	"github.com/scholarmatch/scholarmatch/internal/config"
	"github.com/scholarmatch/scholarmatch/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a scholarship catalog from a JSON file",
		Long: `Import scholarships from a JSON catalog file into the local database.

Records are validated before import; invalid records are skipped and
reported. Existing scholarships with the same name (case-insensitive)
are updated in place.

Examples:
  scholarmatch import scholarships.json
  scholarmatch import scholarships.json --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "Validate without writing to the database")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := config.ExpandPath(args[0])
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	scholarships, err := catalog.Load(path, time.Now())
	if err != nil {
		return err
	}
	if len(scholarships) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), cli.SubtleStyle.Render("Catalog file contains no scholarships."))
		return nil
	}

	valid := make([]model.Scholarship, 0, len(scholarships))
	skipped := 0
	for i := range scholarships {
		if problems := catalog.Validate(scholarships[i]); len(problems) > 0 {
			skipped++
			slog.Warn("Skipping invalid scholarship",
				"name", scholarships[i].Name,
				"problems", strings.Join(problems, "; "))
			continue
		}
		valid = append(valid, scholarships[i])
	}

	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", cli.SuccessStyle.Render(
			fmt.Sprintf("Dry run: %d valid, %d skipped", len(valid), skipped)))
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeStorage(store)

	bar := progressbar.NewOptions(len(valid),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing scholarships..."),
	)

	// One upsert batch per scholarship keeps the bar honest; catalogs are
	// small enough that per-record transactions don't matter.
	for i := range valid {
		if err := store.SaveScholarships(ctx, valid[i:i+1]); err != nil {
			return fmt.Errorf("failed to import %q: %w", valid[i].Name, err)
		}
		_ = bar.Add(1)
	}
	fmt.Fprintln(cmd.OutOrStdout())

	msg := fmt.Sprintf("Imported %d scholarships", len(valid))
	if skipped > 0 {
		msg += fmt.Sprintf(" (%d skipped, see warnings)", skipped)
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(msg))
	return nil
}
