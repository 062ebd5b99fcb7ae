// Category rename command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stockcount-io/stockcount/pkg/types"
)

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <category> <new-name>",
	Short: "Rename a category",
	Long: `Rename changes a category's display name. The category keeps its ID,
so items referencing it are unaffected.

Example:
  stockcount category rename Hoodies "Hoodies & Sweatshirts"`,
	Args: cobra.ExactArgs(2),
	RunE: runCategoryRename,
}

func runCategoryRename(cmd *cobra.Command, args []string) error {
	s, err := openStores()
	if err != nil {
		return err
	}
	defer s.close()

	cat, ok := resolveCategory(s.categories, args[0])
	if !ok {
		return fmt.Errorf("category %q not found", args[0])
	}

	switch result := s.categories.Rename(cat.ID, args[1]); result {
	case types.ResultRejectedEmpty:
		return fmt.Errorf("category name must not be empty")
	case types.ResultRejectedDuplicate:
		return fmt.Errorf("category %q already exists", types.NormalizeName(args[1]))
	case types.ResultNotFound:
		return fmt.Errorf("category %q not found", args[0])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "renamed category %s to %s\n", cat.Name, types.NormalizeName(args[1]))
	return nil
}
