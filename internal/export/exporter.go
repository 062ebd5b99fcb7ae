package export

import (
	"github.com/stockcount-io/stockcount/pkg/types"
)

// Exporter generates export files and tracks whether the last one still
// reflects store state. It subscribes to both stores; any mutation in either
// invalidates the previous artifact.
type Exporter struct {
	categories types.CategoryStore
	inventory  types.InventoryStore
	dir        string

	lastPath string
	cancels  []func()
}

// NewExporter creates an exporter writing into dir and subscribes it to both
// stores. Call Close to drop the subscriptions.
func NewExporter(categories types.CategoryStore, inventory types.InventoryStore, dir string) *Exporter {
	e := &Exporter{
		categories: categories,
		inventory:  inventory,
		dir:        dir,
	}
	e.cancels = append(e.cancels, categories.Subscribe(e.invalidate))
	e.cancels = append(e.cancels, inventory.Subscribe(e.invalidate))
	return e
}

// Export writes a fresh CSV reflecting store state at call time. The
// previous export file, if any, is removed first.
func (e *Exporter) Export() (string, error) {
	ClearOldExports(e.dir)
	path, err := WriteCSV(e.dir, e.inventory.Items(), e.categories.Categories())
	if err != nil {
		return "", err
	}
	e.lastPath = path
	return path, nil
}

// Current returns the path of the last export if it still reflects store
// state. ok is false when no export exists or a store changed since.
func (e *Exporter) Current() (path string, ok bool) {
	if e.lastPath == "" {
		return "", false
	}
	return e.lastPath, true
}

// Close cancels the store subscriptions.
func (e *Exporter) Close() {
	for _, cancel := range e.cancels {
		cancel()
	}
	e.cancels = nil
}

// invalidate forgets the last artifact; the next Current reports stale.
func (e *Exporter) invalidate() {
	e.lastPath = ""
}
