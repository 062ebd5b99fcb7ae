// Shared helpers for stockcount CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/stockcount-io/stockcount/internal/jsonstore"
	"github.com/stockcount-io/stockcount/internal/reconcile"
	"github.com/stockcount-io/stockcount/internal/sqlitestore"
	"github.com/stockcount-io/stockcount/pkg/types"
)

// session bundles the two opened stores with the startup reconciliation
// report and a close hook.
type session struct {
	categories types.CategoryStore
	inventory  types.InventoryStore
	report     reconcile.Report
	close      func()
}

// openStores resolves the data directory, opens the configured backend, and
// runs the reconciliation pass every session starts with. The caller must
// defer s.close().
func openStores() (*session, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := configBackend
	if backend == "" {
		backend = types.BackendJSON
	}
	cfg := types.Config{Backend: backend, DataDir: dataDir}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	s := &session{close: func() {}}
	switch cfg.Backend {
	case types.BackendSQLite:
		b, err := sqlitestore.Open(dataDir, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		s.categories = b.Categories()
		s.inventory = b.Inventory()
		s.close = func() { b.Close() }
	default:
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		s.categories = jsonstore.NewCategoryStore(dataDir, logger)
		s.inventory = jsonstore.NewInventoryStore(dataDir, logger)
	}

	s.report = reconcile.Run(s.categories, s.inventory, logger)
	return s, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// resolveCategory finds a category by ID or, failing that, by
// case-insensitive name.
func resolveCategory(categories types.CategoryStore, ref string) (types.Category, bool) {
	if cat, ok := categories.Get(ref); ok {
		return cat, true
	}
	return categories.FindByName(ref)
}
