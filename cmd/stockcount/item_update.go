// Item update command replaces fields on an existing item.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateID string

var itemUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an inventory item",
	Long: `Update changes the attributes of an existing item. Only the flags
you pass are changed; everything else keeps its current value.

Example:
  stockcount item update --id 3f2a... --quantity 12
  stockcount item update --id 3f2a... --category "Long Sleeves" --sale 19.99`,
	Args: cobra.NoArgs,
	RunE: runItemUpdate,
}

func init() {
	itemUpdateCmd.Flags().StringVar(&updateID, "id", "", "item ID (required)")
	registerItemFlags(itemUpdateCmd)
	_ = itemUpdateCmd.MarkFlagRequired("id")
}

func runItemUpdate(cmd *cobra.Command, args []string) error {
	s, err := openStores()
	if err != nil {
		return err
	}
	defer s.close()

	item, ok := s.inventory.Get(updateID)
	if !ok {
		return fmt.Errorf("item %q not found", updateID)
	}
	if err := applyItemFlags(cmd, &item, s.categories); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	s.inventory.Update(item)

	if flagJSON {
		return printJSON(item)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "updated item %s (%s)\n", item.Name, item.ID)
	return nil
}
