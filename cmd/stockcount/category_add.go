// Category add command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stockcount-io/stockcount/pkg/types"
)

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Long: `Add creates a category. Names are unique case-insensitively; adding a
name that already exists does nothing.

Example:
  stockcount category add "Jackets"`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryAdd,
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	s, err := openStores()
	if err != nil {
		return err
	}
	defer s.close()

	cat, result := s.categories.Add(args[0])
	switch result {
	case types.ResultRejectedEmpty:
		return fmt.Errorf("category name must not be empty")
	case types.ResultRejectedDuplicate:
		return fmt.Errorf("category %q already exists", types.NormalizeName(args[0]))
	}

	if flagJSON {
		return printJSON(cat)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "added category %s (%s)\n", cat.Name, cat.ID)
	return nil
}
