// Category list command.
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with item counts",
	Args:  cobra.NoArgs,
	RunE:  runCategoryList,
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	s, err := openStores()
	if err != nil {
		return err
	}
	defer s.close()

	cats := s.categories.Categories()
	if flagJSON {
		return printJSON(cats)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tITEMS\tQTY\tID")
	for _, cat := range cats {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
			cat.Name,
			len(s.inventory.ItemsInCategory(cat.ID)),
			s.inventory.TotalQuantityInCategory(cat.ID),
			cat.ID)
	}
	return w.Flush()
}
