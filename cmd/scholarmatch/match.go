package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scholarmatch/scholarmatch/internal/cli"
	"github.com/scholarmatch/scholarmatch/internal/common"
	"github.com/scholarmatch/scholarmatch/internal/config"
	"github.com/scholarmatch/scholarmatch/internal/export"
	"github.com/scholarmatch/scholarmatch/internal/matcher"
	"github.com/scholarmatch/scholarmatch/internal/model"
	"github.com/scholarmatch/scholarmatch/internal/storage"
)

func matchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match a profile against the scholarship catalog",
		Long: `Match a student profile against the scholarship catalog and print a
ranked, deadline-aware result list.

The profile comes either from a saved profile (--email) or a JSON file
(--profile). Results can be narrowed with the filter flags and exported
with --export.

Examples:
  scholarmatch match --email jane@example.com
  scholarmatch match --profile me.json --threshold 50
  scholarmatch match --email jane@example.com --category STEM --deadline month
  scholarmatch match --profile me.json --export csv --out matches.csv`,
		RunE: runMatch,
	}

	cmd.Flags().StringP("email", "e", "", "Email of a saved profile")
	cmd.Flags().StringP("profile", "p", "", "Path to a profile JSON file")
	cmd.Flags().IntP("threshold", "t", matcher.DefaultConfig().Threshold, "Minimum match score to include")
	cmd.Flags().String("category", "", "Only show matches in this category")
	cmd.Flags().Float64("min-amount", 0, "Only show awards of at least this amount")
	cmd.Flags().Float64("max-amount", 0, "Only show awards of at most this amount")
	cmd.Flags().String("deadline", "", "Deadline window: week, month, quarter, or year")
	cmd.Flags().Bool("show-failures", false, "Also report scholarships excluded by hard filters")
	cmd.Flags().String("export", "", "Export format: csv or json")
	cmd.Flags().String("out", "", "Export file path (default: stdout)")

	_ = viper.BindPFlag("match.threshold", cmd.Flags().Lookup("threshold"))

	return cmd
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	now := time.Now()

	email, _ := cmd.Flags().GetString("email")
	profilePath, _ := cmd.Flags().GetString("profile")
	if email == "" && profilePath == "" {
		return common.NewUserError("provide a profile with --email or --profile", nil)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeStorage(store)

	profile, err := resolveProfile(cmd, store, email, profilePath)
	if err != nil {
		return err
	}

	scholarships := loadCatalog(ctx, store, now)
	slog.Info("Matching profile against catalog", "profile", profile.Email, "catalog_size", len(scholarships))

	collector := &matcher.ListCollector{}
	engine := matcher.NewWithConfig(matcher.Config{
		Threshold:   viper.GetInt("match.threshold"),
		Diagnostics: collector,
	})

	matches := engine.Match(profile, scholarships)

	criteria := buildCriteria(
		mustString(cmd, "category"),
		mustFloat(cmd, "min-amount"), mustFloat(cmd, "max-amount"),
		cmd.Flags().Changed("min-amount"), cmd.Flags().Changed("max-amount"),
		mustString(cmd, "deadline"),
	)
	if !criteria.IsZero() {
		matches = matcher.Filter(matches, criteria)
	}

	out := cmd.OutOrStdout()
	cli.RenderMatches(out, matches)
	cli.RenderSummary(out, matcher.Summarize(matches))

	if show, _ := cmd.Flags().GetBool("show-failures"); show {
		cli.RenderHardFailures(out, engine.HardFailures(profile, scholarships))
	}

	if format, _ := cmd.Flags().GetString("export"); format != "" {
		if err := exportMatches(cmd, matches, format); err != nil {
			return err
		}
	}
	return nil
}

func resolveProfile(cmd *cobra.Command, store *storage.SQLiteStorage, email, profilePath string) (profile model.Profile, err error) {
	if profilePath != "" {
		return loadProfileFile(profilePath)
	}

	stored, err := store.GetProfileByEmail(cmd.Context(), email)
	if err != nil {
		return profile, fmt.Errorf("failed to load profile: %w", err)
	}
	if stored == nil {
		return profile, common.NewUserError(
			fmt.Sprintf("no saved profile for %s; add one with 'scholarmatch profile add'", email),
			common.ErrNoProfile)
	}
	return *stored, nil
}

func exportMatches(cmd *cobra.Command, matches []model.Match, format string) error {
	outPath, _ := cmd.Flags().GetString("out")

	w := cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(config.ExpandPath(outPath)) // #nosec G304 -- user-supplied export path
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				slog.Error("Failed to close export file", "error", closeErr)
			}
		}()
		w = f
	}

	switch format {
	case "csv":
		if err := export.WriteCSV(w, matches); err != nil {
			return err
		}
	case "json":
		if err := export.WriteJSON(w, matches); err != nil {
			return err
		}
	default:
		return common.NewUserError(fmt.Sprintf("unknown export format %q (use csv or json)", format), nil)
	}

	if outPath != "" {
		fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
			fmt.Sprintf("Exported %d matches to %s", len(matches), outPath)))
	}
	return nil
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func mustFloat(cmd *cobra.Command, name string) float64 {
	v, _ := cmd.Flags().GetFloat64(name)
	return v
}
