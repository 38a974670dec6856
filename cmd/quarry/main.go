package main

import (
	"os"

	"github.com/spf13/cobra"

	"quarry/internal/interfaces/cli/migrate"
	"quarry/internal/interfaces/cli/seed"
	"quarry/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quarry",
		Short: "Quarry - project and ticket tracking",
		Long:  `Quarry is a project tracking service with hierarchical tickets, per-project status workflows, and a read-only customer portal.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
