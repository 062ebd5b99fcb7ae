// Item delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteItemID string

var itemDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an inventory item",
	Args:  cobra.NoArgs,
	RunE:  runItemDelete,
}

func init() {
	itemDeleteCmd.Flags().StringVar(&deleteItemID, "id", "", "item ID (required)")
	_ = itemDeleteCmd.MarkFlagRequired("id")
}

func runItemDelete(cmd *cobra.Command, args []string) error {
	s, err := openStores()
	if err != nil {
		return err
	}
	defer s.close()

	if _, ok := s.inventory.Get(deleteItemID); !ok {
		return fmt.Errorf("item %q not found", deleteItemID)
	}
	s.inventory.Delete(deleteItemID)
	fmt.Fprintf(cmd.OutOrStdout(), "deleted item %s\n", deleteItemID)
	return nil
}
