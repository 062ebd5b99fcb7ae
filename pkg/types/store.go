package types

// CategoryStore owns the set of user-defined categories. Implementations
// keep the set sorted alphabetically (case-insensitive), enforce
// case-insensitive name uniqueness, and persist the full set on every
// applied mutation. Persist failures are logged and swallowed; in-memory
// state stays authoritative for the session.
type CategoryStore interface {
	// Categories returns the current set in sorted order. The returned
	// slice is a copy; mutating it does not affect the store.
	Categories() []Category

	// Get returns the category with the given ID.
	Get(id string) (Category, bool)

	// FindByName returns the category whose name matches case-insensitively.
	FindByName(name string) (Category, bool)

	// Add creates a category with a fresh ID. The name is trimmed first;
	// an empty or duplicate name leaves the set unchanged and reports why.
	Add(name string) (Category, MutationResult)

	// Upsert renames the category with the given ID, or creates it under
	// exactly that ID when absent. Renaming to a name held by a different
	// category, or creating a name that already exists, is rejected as a
	// duplicate. The repair path uses Upsert to restore categories that
	// items still reference.
	Upsert(id, name string) (Category, MutationResult)

	// Rename changes the name of an existing category, subject to the same
	// empty and duplicate checks as Add.
	Rename(id, newName string) MutationResult

	// Delete removes the category. Items referencing it are untouched;
	// the caller decides whether to delete them or clear their references.
	Delete(id string)

	// DeleteWithItems invokes deleteItems with the category ID first, then
	// removes the category, so no item references a missing category in
	// between.
	DeleteWithItems(id string, deleteItems func(categoryID string))

	// Subscribe registers fn to run after every applied mutation. The
	// returned function cancels the subscription.
	Subscribe(fn func()) (cancel func())
}

// InventoryStore owns the item collection. Insertion order is preserved;
// every mutation re-persists the whole collection write-through.
type InventoryStore interface {
	// Items returns all items in insertion order. The returned slice is
	// a copy.
	Items() []Item

	// Get returns the item with the given ID.
	Get(id string) (Item, bool)

	// Add appends the item. The caller assigns a fresh ID beforehand.
	Add(item Item)

	// Update replaces the item with the matching ID; absent IDs are a no-op.
	Update(item Item)

	// Delete removes the item with the given ID; absent IDs are a no-op.
	Delete(id string)

	// DeleteInCategory bulk-removes every item referencing the category.
	DeleteInCategory(categoryID string)

	// ClearCategoryReferences marks every item referencing the category as
	// uncategorized without deleting it.
	ClearCategoryReferences(categoryID string)

	// ItemsInCategory returns the items referencing the category, in
	// insertion order.
	ItemsInCategory(categoryID string) []Item

	// ItemsWithLegacyTag returns the items carrying the legacy tag, in
	// insertion order.
	ItemsWithLegacyTag(tag LegacyCategory) []Item

	// TotalQuantityInCategory sums Quantity over ItemsInCategory.
	TotalQuantityInCategory(categoryID string) int

	// TotalQuantityWithLegacyTag sums Quantity over ItemsWithLegacyTag.
	TotalQuantityWithLegacyTag(tag LegacyCategory) int

	// AssignCategories rewrites CategoryID for each item ID in assign,
	// then persists once for the whole batch. Unknown item IDs are
	// skipped. Returns the number of items changed; nothing persists when
	// it is zero.
	AssignCategories(assign map[string]string) int

	// Subscribe registers fn to run after every applied mutation. The
	// returned function cancels the subscription.
	Subscribe(fn func()) (cancel func())
}
