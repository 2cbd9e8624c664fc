package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shopfloor-inc/shopfloor/internal/interfaces/cli/migrate"
	"github.com/shopfloor-inc/shopfloor/internal/interfaces/cli/server"
)

// @title Shopfloor API
// @version 1.0
// @description Mechanics, service tickets and their assignments for an auto repair shop.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "shopfloor",
		Short: "Shopfloor - repair shop ticket service",
		Long:  `Shopfloor manages mechanics and service tickets over a REST API, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
