package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scholarmatch/scholarmatch/internal/cli"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved student profiles",
	}

	cmd.AddCommand(profileAddCmd())
	cmd.AddCommand(profileListCmd())

	return cmd
}

func profileAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a student profile from a JSON file",
		Long: `Save a student profile so it can be matched by email later.

The profile must include a name, a valid email, grade level, major, and
state. Saving the same email again stores a new revision; matching always
uses the most recent one.

Example:
  scholarmatch profile add --file me.json`,
		RunE: runProfileAdd,
	}

	cmd.Flags().StringP("file", "f", "", "Path to a profile JSON file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runProfileAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	path, _ := cmd.Flags().GetString("file")
	profile, err := loadProfileFile(path)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeStorage(store)

	if err := store.SaveProfile(ctx, &profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
		fmt.Sprintf("Saved profile #%d for %s <%s>", profile.ID, profile.Name, profile.Email)))
	return nil
}

func profileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer closeStorage(store)

			profiles, err := store.ListProfiles(ctx)
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}

			cli.RenderProfiles(cmd.OutOrStdout(), profiles)
			return nil
		},
	}
}
