// Init command: create configuration and data directories and seed storage.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize stockcount storage",
	Long: `Create the configuration and data directories, write a default
config.yaml if missing, and initialize the storage backend with the starter
categories.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Config dir and default config.yaml were ensured while loading config.
	s, err := openStores()
	if err != nil {
		return err
	}
	defer s.close()

	fmt.Fprintf(cmd.OutOrStdout(), "stockcount initialized with %d categories\n",
		len(s.categories.Categories()))
	return nil
}
