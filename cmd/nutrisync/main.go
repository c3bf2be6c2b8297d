package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nutrisync/nutrisync/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "nutrisync",
		Short:   "Wearable-driven nutrition planning in your terminal",
		Version: version.Get(),
		RunE:    runDashboard,
	}

	rootCmd.AddCommand(planCmd())
	rootCmd.AddCommand(recoveryCmd())
	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(upgradeCmd())
	addDevCommands(rootCmd)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
