package jsonstore

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/stockcount-io/stockcount/internal/notify"
	"github.com/stockcount-io/stockcount/pkg/types"
)

// InventoryStore implements types.InventoryStore over inventory.json.
// Insertion order is preserved; every mutation rewrites the whole document.
type InventoryStore struct {
	path  string
	items []types.Item
	subs  *notify.Hub
	log   zerolog.Logger
}

var _ types.InventoryStore = (*InventoryStore)(nil)

// NewInventoryStore loads inventory.json from dataDir. A missing or
// unreadable document yields an empty collection. Loaded records hydrate
// zero-valued enum fields with their declared defaults.
func NewInventoryStore(dataDir string, log zerolog.Logger) *InventoryStore {
	s := &InventoryStore{
		path: filepath.Join(dataDir, inventoryFile),
		subs: notify.NewHub(),
		log:  log.With().Str("component", "inventory").Logger(),
	}
	if _, err := readDocument(s.path, &s.items); err != nil {
		s.log.Warn().Err(err).Msg("load failed, starting empty")
		s.items = nil
	}
	for i := range s.items {
		s.items[i].ApplyDefaults()
	}
	return s
}

// Items returns a copy of the collection in insertion order.
func (s *InventoryStore) Items() []types.Item {
	out := make([]types.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the item with the given ID.
func (s *InventoryStore) Get(id string) (types.Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return types.Item{}, false
}

// Add appends the item and persists.
func (s *InventoryStore) Add(item types.Item) {
	s.items = append(s.items, item)
	s.persist()
	s.subs.Notify()
}

// Update replaces the item with the matching ID; absent IDs are a no-op.
func (s *InventoryStore) Update(item types.Item) {
	for i, it := range s.items {
		if it.ID == item.ID {
			s.items[i] = item
			s.persist()
			s.subs.Notify()
			return
		}
	}
}

// Delete removes the item with the given ID; absent IDs are a no-op.
func (s *InventoryStore) Delete(id string) {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			s.subs.Notify()
			return
		}
	}
}

// DeleteInCategory bulk-removes every item referencing the category.
func (s *InventoryStore) DeleteInCategory(categoryID string) {
	kept := s.items[:0]
	removed := 0
	for _, it := range s.items {
		if it.CategoryID == categoryID {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	if removed == 0 {
		return
	}
	s.items = kept
	s.persist()
	s.subs.Notify()
}

// ClearCategoryReferences marks every item referencing the category as
// uncategorized; the items themselves survive.
func (s *InventoryStore) ClearCategoryReferences(categoryID string) {
	changed := 0
	for i := range s.items {
		if s.items[i].CategoryID == categoryID {
			s.items[i].CategoryID = ""
			changed++
		}
	}
	if changed == 0 {
		return
	}
	s.persist()
	s.subs.Notify()
}

// ItemsInCategory returns the items referencing the category.
func (s *InventoryStore) ItemsInCategory(categoryID string) []types.Item {
	var out []types.Item
	for _, it := range s.items {
		if it.CategoryID == categoryID {
			out = append(out, it)
		}
	}
	return out
}

// ItemsWithLegacyTag returns the items carrying the legacy tag.
func (s *InventoryStore) ItemsWithLegacyTag(tag types.LegacyCategory) []types.Item {
	var out []types.Item
	for _, it := range s.items {
		if it.Legacy == tag {
			out = append(out, it)
		}
	}
	return out
}

// TotalQuantityInCategory sums Quantity over the category's items.
func (s *InventoryStore) TotalQuantityInCategory(categoryID string) int {
	total := 0
	for _, it := range s.items {
		if it.CategoryID == categoryID {
			total += it.Quantity
		}
	}
	return total
}

// TotalQuantityWithLegacyTag sums Quantity over the tag's items.
func (s *InventoryStore) TotalQuantityWithLegacyTag(tag types.LegacyCategory) int {
	total := 0
	for _, it := range s.items {
		if it.Legacy == tag {
			total += it.Quantity
		}
	}
	return total
}

// AssignCategories rewrites CategoryID for each listed item, then persists
// once for the whole batch. The reconciliation routine batches its item
// mutations through here so a migration pass costs one write, not one per
// item.
func (s *InventoryStore) AssignCategories(assign map[string]string) int {
	changed := 0
	for i := range s.items {
		categoryID, ok := assign[s.items[i].ID]
		if !ok || s.items[i].CategoryID == categoryID {
			continue
		}
		s.items[i].CategoryID = categoryID
		changed++
	}
	if changed > 0 {
		s.persist()
		s.subs.Notify()
	}
	return changed
}

// Subscribe registers a change callback.
func (s *InventoryStore) Subscribe(fn func()) (cancel func()) {
	return s.subs.Add(fn)
}

// persist writes the full collection. Failures are logged and swallowed.
func (s *InventoryStore) persist() {
	items := s.items
	if items == nil {
		items = []types.Item{}
	}
	if err := writeDocument(s.path, items); err != nil {
		s.log.Warn().Err(err).Msg("persist failed")
	}
}
