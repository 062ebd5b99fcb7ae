// Category delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	deleteWithItems bool
	deleteKeepItems bool
)

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <category>",
	Short: "Delete a category",
	Long: `Delete removes a category. By default its items survive as
uncategorized (--keep-items makes that explicit); with --with-items the
items are deleted along with it.

Example:
  stockcount category delete Pants
  stockcount category delete Pants --with-items`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryDelete,
}

func init() {
	categoryDeleteCmd.Flags().BoolVar(&deleteWithItems, "with-items", false, "also delete every item in the category")
	categoryDeleteCmd.Flags().BoolVar(&deleteKeepItems, "keep-items", false, "keep items as uncategorized (the default)")
	categoryDeleteCmd.MarkFlagsMutuallyExclusive("with-items", "keep-items")
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	s, err := openStores()
	if err != nil {
		return err
	}
	defer s.close()

	cat, ok := resolveCategory(s.categories, args[0])
	if !ok {
		return fmt.Errorf("category %q not found", args[0])
	}

	if deleteWithItems {
		removed := len(s.inventory.ItemsInCategory(cat.ID))
		s.categories.DeleteWithItems(cat.ID, s.inventory.DeleteInCategory)
		fmt.Fprintf(cmd.OutOrStdout(), "deleted category %s and %d items\n", cat.Name, removed)
		return nil
	}

	s.inventory.ClearCategoryReferences(cat.ID)
	s.categories.Delete(cat.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "deleted category %s, items kept as uncategorized\n", cat.Name)
	return nil
}
