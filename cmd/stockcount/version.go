// Version command for the stockcount CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI version, overridable at build time with
// -ldflags "-X main.Version=...".
var Version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the stockcount version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stockcount", Version)
	},
}
