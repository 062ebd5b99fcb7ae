package sqlitestore

import (
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/stockcount-io/stockcount/internal/notify"
	"github.com/stockcount-io/stockcount/pkg/types"
)

// CategoryStore implements types.CategoryStore over the categories table.
type CategoryStore struct {
	db   *sql.DB
	subs *notify.Hub
	log  zerolog.Logger
}

var _ types.CategoryStore = (*CategoryStore)(nil)

func newCategoryStore(db *sql.DB, log zerolog.Logger) *CategoryStore {
	return &CategoryStore{
		db:   db,
		subs: notify.NewHub(),
		log:  log.With().Str("component", "categories").Logger(),
	}
}

// seedIfEmpty inserts the default starter categories when the table holds
// no rows.
func (s *CategoryStore) seedIfEmpty() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range types.DefaultCategoryNames {
		cat := types.NewCategory(name)
		if _, err := s.db.Exec(
			"INSERT INTO categories (category_id, name) VALUES (?, ?)",
			cat.ID, cat.Name,
		); err != nil {
			return err
		}
	}
	return nil
}

// Categories returns the set sorted alphabetically, case-insensitive.
func (s *CategoryStore) Categories() []types.Category {
	rows, err := s.db.Query("SELECT category_id, name FROM categories ORDER BY name COLLATE NOCASE")
	if err != nil {
		s.log.Warn().Err(err).Msg("listing categories failed")
		return nil
	}
	defer rows.Close()

	var out []types.Category
	for rows.Next() {
		var cat types.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			s.log.Warn().Err(err).Msg("scanning category failed")
			return out
		}
		out = append(out, cat)
	}
	if err := rows.Err(); err != nil {
		s.log.Warn().Err(err).Msg("listing categories failed")
	}
	return out
}

// Get returns the category with the given ID.
func (s *CategoryStore) Get(id string) (types.Category, bool) {
	var cat types.Category
	err := s.db.QueryRow(
		"SELECT category_id, name FROM categories WHERE category_id = ?", id,
	).Scan(&cat.ID, &cat.Name)
	if err != nil {
		if err != sql.ErrNoRows {
			s.log.Warn().Err(err).Str("id", id).Msg("category lookup failed")
		}
		return types.Category{}, false
	}
	return cat, true
}

// FindByName returns the category whose name matches case-insensitively.
func (s *CategoryStore) FindByName(name string) (types.Category, bool) {
	var cat types.Category
	err := s.db.QueryRow(
		"SELECT category_id, name FROM categories WHERE name = ? COLLATE NOCASE", name,
	).Scan(&cat.ID, &cat.Name)
	if err != nil {
		if err != sql.ErrNoRows {
			s.log.Warn().Err(err).Str("name", name).Msg("category lookup failed")
		}
		return types.Category{}, false
	}
	return cat, true
}

// Add creates a category with a fresh ID.
func (s *CategoryStore) Add(name string) (types.Category, types.MutationResult) {
	trimmed := types.NormalizeName(name)
	if trimmed == "" {
		return types.Category{}, types.ResultRejectedEmpty
	}
	if _, ok := s.FindByName(trimmed); ok {
		return types.Category{}, types.ResultRejectedDuplicate
	}

	cat := types.NewCategory(trimmed)
	if _, err := s.db.Exec(
		"INSERT INTO categories (category_id, name) VALUES (?, ?)", cat.ID, cat.Name,
	); err != nil {
		// Swallowed per the storage failure policy; a later reconciliation
		// pass repairs any reference left pointing at the lost row.
		s.log.Warn().Err(err).Str("name", trimmed).Msg("category insert failed")
	}
	s.subs.Notify()
	return cat, types.ResultOK
}

// Upsert renames the category with the given ID, or creates it under
// exactly that ID when absent.
func (s *CategoryStore) Upsert(id, name string) (types.Category, types.MutationResult) {
	trimmed := types.NormalizeName(name)
	if trimmed == "" {
		return types.Category{}, types.ResultRejectedEmpty
	}

	if existing, ok := s.Get(id); ok {
		if dup, ok := s.FindByName(trimmed); ok && dup.ID != id {
			return types.Category{}, types.ResultRejectedDuplicate
		}
		existing.Name = trimmed
		if _, err := s.db.Exec(
			"UPDATE categories SET name = ? WHERE category_id = ?", trimmed, id,
		); err != nil {
			s.log.Warn().Err(err).Str("id", id).Msg("category rename failed")
		}
		s.subs.Notify()
		return existing, types.ResultOK
	}

	if _, ok := s.FindByName(trimmed); ok {
		return types.Category{}, types.ResultRejectedDuplicate
	}

	cat := types.Category{ID: id, Name: trimmed}
	if _, err := s.db.Exec(
		"INSERT INTO categories (category_id, name) VALUES (?, ?)", cat.ID, cat.Name,
	); err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("category insert failed")
	}
	s.subs.Notify()
	return cat, types.ResultOK
}

// Rename changes the name of an existing category.
func (s *CategoryStore) Rename(id, newName string) types.MutationResult {
	trimmed := types.NormalizeName(newName)
	if trimmed == "" {
		return types.ResultRejectedEmpty
	}
	if _, ok := s.Get(id); !ok {
		return types.ResultNotFound
	}
	if dup, ok := s.FindByName(trimmed); ok && dup.ID != id {
		return types.ResultRejectedDuplicate
	}
	if _, err := s.db.Exec(
		"UPDATE categories SET name = ? WHERE category_id = ?", trimmed, id,
	); err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("category rename failed")
	}
	s.subs.Notify()
	return types.ResultOK
}

// Delete removes the category; items referencing it are untouched.
func (s *CategoryStore) Delete(id string) {
	res, err := s.db.Exec("DELETE FROM categories WHERE category_id = ?", id)
	if err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("category delete failed")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.subs.Notify()
	}
}

// DeleteWithItems removes the items first, then the category.
func (s *CategoryStore) DeleteWithItems(id string, deleteItems func(categoryID string)) {
	deleteItems(id)
	s.Delete(id)
}

// Subscribe registers a change callback.
func (s *CategoryStore) Subscribe(fn func()) (cancel func()) {
	return s.subs.Add(fn)
}
