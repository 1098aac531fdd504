package main

import (
	"os"

	"github.com/spf13/cobra"

	"relnotes/internal/interfaces/cli/createuser"
	"relnotes/internal/interfaces/cli/migrate"
	"relnotes/internal/interfaces/cli/server"
	"relnotes/internal/interfaces/cli/sync"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "relnotes",
		Short: "Release-notes content management service",
		Long:  `Relnotes manages product release notes: a REST API, database migrations, and a remote sync client.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		sync.NewCommand(),
		createuser.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
