// Item list command.
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stockcount-io/stockcount/pkg/types"
)

var (
	listCategory string
	listLegacy   string
)

var itemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List inventory items",
	Long: `List displays inventory items with their category and prices.

Use --category to scope the list to one category, or --legacy to scope it
to items still carrying a legacy category tag.

Example:
  stockcount item list
  stockcount item list --category Hoodies
  stockcount item list --legacy longSleeves --json`,
	Args: cobra.NoArgs,
	RunE: runItemList,
}

func init() {
	itemListCmd.Flags().StringVar(&listCategory, "category", "", "filter by category name or ID")
	itemListCmd.Flags().StringVar(&listLegacy, "legacy", "", "filter by legacy category tag")
}

func runItemList(cmd *cobra.Command, args []string) error {
	s, err := openStores()
	if err != nil {
		return err
	}
	defer s.close()

	var items []types.Item
	switch {
	case listCategory != "":
		cat, ok := resolveCategory(s.categories, listCategory)
		if !ok {
			return fmt.Errorf("category %q not found", listCategory)
		}
		items = s.inventory.ItemsInCategory(cat.ID)
	case listLegacy != "":
		tag := types.LegacyCategory(listLegacy)
		if !tag.Valid() {
			return fmt.Errorf("unknown legacy tag %q", listLegacy)
		}
		items = s.inventory.ItemsWithLegacyTag(tag)
	default:
		items = s.inventory.Items()
	}

	if flagJSON {
		return printJSON(items)
	}

	names := make(map[string]string)
	for _, cat := range s.categories.Categories() {
		names[cat.ID] = cat.Name
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tQTY\tCOST\tSALE\tID")
	total := 0
	for _, item := range items {
		category := string(item.Legacy)
		if name, ok := names[item.CategoryID]; item.Categorized() && ok {
			category = name
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			item.Name, category, item.Quantity,
			item.CostPrice.StringFixed(2), item.SalePrice.StringFixed(2), item.ID)
		total += item.Quantity
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d items, total quantity %d\n", len(items), total)
	return nil
}
