// Package commands defines the catalog CLI surface.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Item catalog CRUD service and client tooling",
	}

	rootCmd.AddCommand(
		NewServeCommand(),
		NewSeedCommand(),
		NewItemsCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}
