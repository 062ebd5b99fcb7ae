// Item add command creates a new inventory item.
package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/stockcount-io/stockcount/pkg/types"
)

// EnvAutofillLast enables prefilling new items from the most recently
// added one, the add-form auto-fill toggle.
const EnvAutofillLast = "STOCKCOUNT_AUTOFILL_LAST"

var (
	addName        string
	addDescription string
	addCost        string
	addSale        string
	addQuantity    int
	addColor       string
	addSize        string
	addCustomSize  string
	addSeason      string
	addCategory    string
	addImage       string
)

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an inventory item",
	Long: `Add creates a new inventory item.

With STOCKCOUNT_AUTOFILL_LAST=1 in the environment, attribute flags you do
not pass are prefilled from the most recently added item.

Example:
  stockcount item add --name "Black hoodie" --cost 12.50 --sale 29.99 --quantity 40 --category Hoodies
  stockcount item add --name "Chinos" --color brown --size L --season All`,
	Args: cobra.NoArgs,
	RunE: runItemAdd,
}

func init() {
	registerItemFlags(itemAddCmd)
	_ = itemAddCmd.MarkFlagRequired("name")
}

// registerItemFlags binds the shared item attribute flags to cmd. Add and
// update take the same attribute set.
func registerItemFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&addName, "name", "", "item name")
	cmd.Flags().StringVar(&addDescription, "description", "", "free-text description")
	cmd.Flags().StringVar(&addCost, "cost", "0", "cost price")
	cmd.Flags().StringVar(&addSale, "sale", "0", "sale price")
	cmd.Flags().IntVar(&addQuantity, "quantity", 0, "stock quantity")
	cmd.Flags().StringVar(&addColor, "color", string(types.DefaultColor), "color")
	cmd.Flags().StringVar(&addSize, "size", string(types.DefaultSize), "standard size")
	cmd.Flags().StringVar(&addCustomSize, "custom-size", string(types.DefaultCustomSize), "numeric size")
	cmd.Flags().StringVar(&addSeason, "season", string(types.DefaultSeason), "selling season")
	cmd.Flags().StringVar(&addCategory, "category", "", "category name or ID")
	cmd.Flags().StringVar(&addImage, "image", "", "image reference")
}

func runItemAdd(cmd *cobra.Command, args []string) error {
	s, err := openStores()
	if err != nil {
		return err
	}
	defer s.close()

	item := types.NewItem(addName)

	if os.Getenv(EnvAutofillLast) == "1" {
		if items := s.inventory.Items(); len(items) > 0 {
			last := items[len(items)-1]
			item.Description = last.Description
			item.CostPrice = last.CostPrice
			item.SalePrice = last.SalePrice
			item.Quantity = last.Quantity
			item.Color = last.Color
			item.Size = last.Size
			item.CustomSize = last.CustomSize
			item.Season = last.Season
			item.CategoryID = last.CategoryID
			item.Image = last.Image
		}
	}

	if err := applyItemFlags(cmd, &item, s.categories); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	s.inventory.Add(item)

	if flagJSON {
		return printJSON(item)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "added item %s (%s)\n", item.Name, item.ID)
	return nil
}

// applyItemFlags copies every flag the user passed on cmd into item.
// Untouched flags leave the item's current values in place, which is what
// both add (defaults or autofill) and update (existing record) need.
func applyItemFlags(cmd *cobra.Command, item *types.Item, categories types.CategoryStore) error {
	flags := cmd.Flags()

	if flags.Changed("name") {
		item.Name = addName
	}
	if flags.Changed("description") {
		item.Description = addDescription
	}
	if flags.Changed("cost") {
		d, err := decimal.NewFromString(addCost)
		if err != nil {
			return fmt.Errorf("invalid cost price %q: %w", addCost, err)
		}
		item.CostPrice = d
	}
	if flags.Changed("sale") {
		d, err := decimal.NewFromString(addSale)
		if err != nil {
			return fmt.Errorf("invalid sale price %q: %w", addSale, err)
		}
		item.SalePrice = d
	}
	if flags.Changed("quantity") {
		item.Quantity = addQuantity
	}
	if flags.Changed("color") {
		c := types.Color(addColor)
		if !c.Valid() {
			return fmt.Errorf("unknown color %q", addColor)
		}
		item.Color = c
	}
	if flags.Changed("size") {
		sz := types.Size(addSize)
		if !sz.Valid() {
			return fmt.Errorf("unknown size %q", addSize)
		}
		item.Size = sz
	}
	if flags.Changed("custom-size") {
		cs := types.CustomSize(addCustomSize)
		if !cs.Valid() {
			return fmt.Errorf("unknown custom size %q", addCustomSize)
		}
		item.CustomSize = cs
	}
	if flags.Changed("season") {
		se := types.Season(addSeason)
		if !se.Valid() {
			return fmt.Errorf("unknown season %q", addSeason)
		}
		item.Season = se
	}
	if flags.Changed("image") {
		item.Image = addImage
	}
	if flags.Changed("category") {
		if addCategory == "" {
			item.CategoryID = ""
		} else {
			cat, ok := resolveCategory(categories, addCategory)
			if !ok {
				return fmt.Errorf("category %q not found", addCategory)
			}
			item.CategoryID = cat.ID
		}
	}
	return nil
}
