package main

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/nutrisync/nutrisync/internal/plan"
	"github.com/nutrisync/nutrisync/internal/recipe"
	"github.com/nutrisync/nutrisync/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the full-screen dashboard",
		Long:  "Opens the terminal dashboard showing recovery, today's meals, and macro targets from locally synced data.",
		RunE:  runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	st, err := openStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer func() { _ = st.Close() }()

	deps := tui.Deps{
		UserID:  localUserID,
		Store:   st,
		Service: plan.NewService(recipe.Seed(), st.Plans, quietLogger()),
	}
	model := tui.New(deps)

	if _, err := tea.NewProgram(&model).Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
