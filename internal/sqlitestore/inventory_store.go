package sqlitestore

import (
	"database/sql"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/stockcount-io/stockcount/internal/notify"
	"github.com/stockcount-io/stockcount/pkg/types"
)

// itemColumns is the select list matching scanItem's scan order. Rows come
// back in rowid order, which is insertion order for this table.
const itemColumns = `item_id, name, description, cost_price, sale_price,
	quantity, color, image, category_id, legacy, size, custom_size, season`

// InventoryStore implements types.InventoryStore over the items table.
type InventoryStore struct {
	db   *sql.DB
	subs *notify.Hub
	log  zerolog.Logger
}

var _ types.InventoryStore = (*InventoryStore)(nil)

func newInventoryStore(db *sql.DB, log zerolog.Logger) *InventoryStore {
	return &InventoryStore{
		db:   db,
		subs: notify.NewHub(),
		log:  log.With().Str("component", "inventory").Logger(),
	}
}

// scanItem hydrates one item row, applying enum defaults the same way the
// JSON backend does on load.
func scanItem(rows interface{ Scan(...any) error }) (types.Item, error) {
	var (
		it         types.Item
		cost, sale string
		categoryID sql.NullString
	)
	err := rows.Scan(
		&it.ID, &it.Name, &it.Description, &cost, &sale,
		&it.Quantity, &it.Color, &it.Image, &categoryID,
		&it.Legacy, &it.Size, &it.CustomSize, &it.Season,
	)
	if err != nil {
		return types.Item{}, err
	}
	if d, derr := decimal.NewFromString(cost); derr == nil {
		it.CostPrice = d
	}
	if d, derr := decimal.NewFromString(sale); derr == nil {
		it.SalePrice = d
	}
	it.CategoryID = categoryID.String
	it.ApplyDefaults()
	return it, nil
}

// queryItems runs a select with itemColumns and hydrates every row.
func (s *InventoryStore) queryItems(query string, args ...any) []types.Item {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.log.Warn().Err(err).Msg("listing items failed")
		return nil
	}
	defer rows.Close()

	var out []types.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			s.log.Warn().Err(err).Msg("scanning item failed")
			return out
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		s.log.Warn().Err(err).Msg("listing items failed")
	}
	return out
}

// Items returns all items in insertion order.
func (s *InventoryStore) Items() []types.Item {
	return s.queryItems("SELECT " + itemColumns + " FROM items ORDER BY rowid")
}

// Get returns the item with the given ID.
func (s *InventoryStore) Get(id string) (types.Item, bool) {
	it, err := scanItem(s.db.QueryRow(
		"SELECT "+itemColumns+" FROM items WHERE item_id = ?", id,
	))
	if err != nil {
		if err != sql.ErrNoRows {
			s.log.Warn().Err(err).Str("id", id).Msg("item lookup failed")
		}
		return types.Item{}, false
	}
	return it, true
}

// categoryArg converts the empty "uncategorized" CategoryID to NULL.
func categoryArg(categoryID string) any {
	if categoryID == "" {
		return nil
	}
	return categoryID
}

// Add appends the item.
func (s *InventoryStore) Add(item types.Item) {
	if _, err := s.db.Exec(
		`INSERT INTO items (item_id, name, description, cost_price, sale_price,
			quantity, color, image, category_id, legacy, size, custom_size, season)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Description,
		item.CostPrice.String(), item.SalePrice.String(),
		item.Quantity, item.Color, item.Image, categoryArg(item.CategoryID),
		item.Legacy, item.Size, item.CustomSize, item.Season,
	); err != nil {
		s.log.Warn().Err(err).Str("id", item.ID).Msg("item insert failed")
		return
	}
	s.subs.Notify()
}

// Update replaces the item with the matching ID; absent IDs are a no-op.
func (s *InventoryStore) Update(item types.Item) {
	res, err := s.db.Exec(
		`UPDATE items SET name = ?, description = ?, cost_price = ?, sale_price = ?,
			quantity = ?, color = ?, image = ?, category_id = ?, legacy = ?,
			size = ?, custom_size = ?, season = ?
		WHERE item_id = ?`,
		item.Name, item.Description,
		item.CostPrice.String(), item.SalePrice.String(),
		item.Quantity, item.Color, item.Image, categoryArg(item.CategoryID),
		item.Legacy, item.Size, item.CustomSize, item.Season, item.ID,
	)
	if err != nil {
		s.log.Warn().Err(err).Str("id", item.ID).Msg("item update failed")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.subs.Notify()
	}
}

// Delete removes the item with the given ID; absent IDs are a no-op.
func (s *InventoryStore) Delete(id string) {
	res, err := s.db.Exec("DELETE FROM items WHERE item_id = ?", id)
	if err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("item delete failed")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.subs.Notify()
	}
}

// DeleteInCategory bulk-removes every item referencing the category.
func (s *InventoryStore) DeleteInCategory(categoryID string) {
	res, err := s.db.Exec("DELETE FROM items WHERE category_id = ?", categoryID)
	if err != nil {
		s.log.Warn().Err(err).Str("category_id", categoryID).Msg("bulk delete failed")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.subs.Notify()
	}
}

// ClearCategoryReferences marks every item referencing the category as
// uncategorized without deleting it.
func (s *InventoryStore) ClearCategoryReferences(categoryID string) {
	res, err := s.db.Exec(
		"UPDATE items SET category_id = NULL WHERE category_id = ?", categoryID,
	)
	if err != nil {
		s.log.Warn().Err(err).Str("category_id", categoryID).Msg("clearing references failed")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.subs.Notify()
	}
}

// ItemsInCategory returns the items referencing the category.
func (s *InventoryStore) ItemsInCategory(categoryID string) []types.Item {
	return s.queryItems(
		"SELECT "+itemColumns+" FROM items WHERE category_id = ? ORDER BY rowid",
		categoryID,
	)
}

// ItemsWithLegacyTag returns the items carrying the legacy tag.
func (s *InventoryStore) ItemsWithLegacyTag(tag types.LegacyCategory) []types.Item {
	return s.queryItems(
		"SELECT "+itemColumns+" FROM items WHERE legacy = ? ORDER BY rowid",
		tag,
	)
}

// TotalQuantityInCategory sums Quantity over the category's items.
func (s *InventoryStore) TotalQuantityInCategory(categoryID string) int {
	var total int
	err := s.db.QueryRow(
		"SELECT COALESCE(SUM(quantity), 0) FROM items WHERE category_id = ?", categoryID,
	).Scan(&total)
	if err != nil {
		s.log.Warn().Err(err).Str("category_id", categoryID).Msg("quantity sum failed")
	}
	return total
}

// TotalQuantityWithLegacyTag sums Quantity over the tag's items.
func (s *InventoryStore) TotalQuantityWithLegacyTag(tag types.LegacyCategory) int {
	var total int
	err := s.db.QueryRow(
		"SELECT COALESCE(SUM(quantity), 0) FROM items WHERE legacy = ?", tag,
	).Scan(&total)
	if err != nil {
		s.log.Warn().Err(err).Str("legacy", string(tag)).Msg("quantity sum failed")
	}
	return total
}

// AssignCategories rewrites CategoryID for each listed item inside one
// transaction, the batch-persist analogue of the JSON backend.
func (s *InventoryStore) AssignCategories(assign map[string]string) int {
	if len(assign) == 0 {
		return 0
	}

	tx, err := s.db.Begin()
	if err != nil {
		s.log.Warn().Err(err).Msg("assign transaction failed")
		return 0
	}
	defer tx.Rollback()

	changed := 0
	for itemID, categoryID := range assign {
		// IS NOT treats NULL as a comparable value, so assigning to or
		// from the uncategorized state counts correctly.
		res, err := tx.Exec(
			"UPDATE items SET category_id = ? WHERE item_id = ? AND category_id IS NOT ?",
			categoryArg(categoryID), itemID, categoryArg(categoryID),
		)
		if err != nil {
			s.log.Warn().Err(err).Str("id", itemID).Msg("assigning category failed")
			return 0
		}
		n, _ := res.RowsAffected()
		changed += int(n)
	}
	if err := tx.Commit(); err != nil {
		s.log.Warn().Err(err).Msg("assign commit failed")
		return 0
	}
	if changed > 0 {
		s.subs.Notify()
	}
	return changed
}

// Subscribe registers a change callback.
func (s *InventoryStore) Subscribe(fn func()) (cancel func()) {
	return s.subs.Add(fn)
}
