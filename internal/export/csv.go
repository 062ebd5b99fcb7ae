// Package export projects the two stores into tabular files. Export is
// read-only: it never mutates store state.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stockcount-io/stockcount/pkg/types"
)

// filePrefix starts every export file name, so stale exports can be found
// and removed.
const filePrefix = "stockcount_inventory_"

// columns is the fixed CSV header.
var columns = []string{
	"Name", "Description", "Category", "Quantity", "Price", "SalePrice",
	"Color", "Size", "Season", "Image", "ID",
}

// WriteCSV writes one row per item into a timestamped CSV file under dir and
// returns the file path. The Category column resolves the item's category
// name, falling back to the raw legacy tag when the reference is unset or
// unresolved.
func WriteCSV(dir string, items []types.Item, categories []types.Category) (string, error) {
	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	name := fmt.Sprintf("%s%s_%s.csv", filePrefix, timestamp(), uuid.NewString())
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return "", fmt.Errorf("writing header: %w", err)
	}
	for _, item := range items {
		if err := w.Write(row(item, names)); err != nil {
			f.Close()
			return "", fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return "", fmt.Errorf("flushing export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing export file: %w", err)
	}
	return path, nil
}

// row renders one item. Prices use two-decimal display rounding.
func row(item types.Item, names map[string]string) []string {
	category := string(item.Legacy)
	if item.Categorized() {
		if name, ok := names[item.CategoryID]; ok {
			category = name
		}
	}
	return []string{
		item.Name,
		item.Description,
		category,
		strconv.Itoa(item.Quantity),
		item.CostPrice.StringFixed(2),
		item.SalePrice.StringFixed(2),
		string(item.Color),
		string(item.Size),
		string(item.Season),
		item.Image,
		item.ID,
	}
}

// ClearOldExports removes previously generated export files from dir so a
// stale file is never shared by mistake. Returns the number removed.
func ClearOldExports(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), filePrefix) {
			continue
		}
		if os.Remove(filepath.Join(dir, entry.Name())) == nil {
			removed++
		}
	}
	return removed
}

func timestamp() string {
	return time.Now().Format("2006-01-02_15-04-05")
}
