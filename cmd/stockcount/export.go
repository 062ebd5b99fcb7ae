// Export command projects the inventory into a CSV file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stockcount-io/stockcount/internal/export"
)

var exportDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the inventory to a CSV file",
	Long: `Export writes one row per item, with the category resolved to its
display name (items still on a legacy tag show the raw tag). Older export
files in the output directory are removed first so a stale file is never
shared by mistake.

Example:
  stockcount export
  stockcount export --out /tmp/exports`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "out", ".", "output directory")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openStores()
	if err != nil {
		return err
	}
	defer s.close()

	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	exporter := export.NewExporter(s.categories, s.inventory, exportDir)
	defer exporter.Close()

	path, err := exporter.Export()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d items to %s\n", len(s.inventory.Items()), path)
	return nil
}
