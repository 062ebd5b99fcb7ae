package jsonstore

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/stockcount-io/stockcount/internal/notify"
	"github.com/stockcount-io/stockcount/pkg/types"
)

// CategoryStore implements types.CategoryStore over categories.json.
type CategoryStore struct {
	path       string
	categories []types.Category
	subs       *notify.Hub
	log        zerolog.Logger
}

var _ types.CategoryStore = (*CategoryStore)(nil)

// NewCategoryStore loads categories.json from dataDir. A missing or
// unreadable document yields an empty set; an empty set is seeded with the
// default starter categories and persisted.
func NewCategoryStore(dataDir string, log zerolog.Logger) *CategoryStore {
	s := &CategoryStore{
		path: filepath.Join(dataDir, categoriesFile),
		subs: notify.NewHub(),
		log:  log.With().Str("component", "categories").Logger(),
	}
	if _, err := readDocument(s.path, &s.categories); err != nil {
		s.log.Warn().Err(err).Msg("load failed, starting empty")
		s.categories = nil
	}
	if len(s.categories) == 0 {
		for _, name := range types.DefaultCategoryNames {
			s.categories = append(s.categories, types.NewCategory(name))
		}
		types.SortCategories(s.categories)
		s.persist()
	}
	return s
}

// Categories returns a copy of the set in sorted order.
func (s *CategoryStore) Categories() []types.Category {
	out := make([]types.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Get returns the category with the given ID.
func (s *CategoryStore) Get(id string) (types.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return types.Category{}, false
}

// FindByName returns the category whose name matches case-insensitively.
func (s *CategoryStore) FindByName(name string) (types.Category, bool) {
	for _, c := range s.categories {
		if types.SameName(c.Name, name) {
			return c, true
		}
	}
	return types.Category{}, false
}

// Add creates a category with a fresh ID, keeping the set sorted and
// unique by case-insensitive name.
func (s *CategoryStore) Add(name string) (types.Category, types.MutationResult) {
	trimmed := types.NormalizeName(name)
	if trimmed == "" {
		return types.Category{}, types.ResultRejectedEmpty
	}
	if _, ok := s.FindByName(trimmed); ok {
		return types.Category{}, types.ResultRejectedDuplicate
	}

	cat := types.NewCategory(trimmed)
	s.categories = append(s.categories, cat)
	types.SortCategories(s.categories)
	s.persist()
	s.subs.Notify()
	return cat, types.ResultOK
}

// Upsert renames the category with the given ID, or creates it under exactly
// that ID when absent. The repair path depends on the created category
// keeping the requested ID.
func (s *CategoryStore) Upsert(id, name string) (types.Category, types.MutationResult) {
	trimmed := types.NormalizeName(name)
	if trimmed == "" {
		return types.Category{}, types.ResultRejectedEmpty
	}

	for i, c := range s.categories {
		if c.ID != id {
			continue
		}
		if dup, ok := s.FindByName(trimmed); ok && dup.ID != id {
			return types.Category{}, types.ResultRejectedDuplicate
		}
		s.categories[i].Name = trimmed
		types.SortCategories(s.categories)
		s.persist()
		s.subs.Notify()
		cat, _ := s.Get(id)
		return cat, types.ResultOK
	}

	if _, ok := s.FindByName(trimmed); ok {
		return types.Category{}, types.ResultRejectedDuplicate
	}

	cat := types.Category{ID: id, Name: trimmed}
	s.categories = append(s.categories, cat)
	types.SortCategories(s.categories)
	s.persist()
	s.subs.Notify()
	return cat, types.ResultOK
}

// Rename changes the name of an existing category.
func (s *CategoryStore) Rename(id, newName string) types.MutationResult {
	trimmed := types.NormalizeName(newName)
	if trimmed == "" {
		return types.ResultRejectedEmpty
	}
	for i, c := range s.categories {
		if c.ID != id {
			continue
		}
		if dup, ok := s.FindByName(trimmed); ok && dup.ID != id {
			return types.ResultRejectedDuplicate
		}
		s.categories[i].Name = trimmed
		types.SortCategories(s.categories)
		s.persist()
		s.subs.Notify()
		return types.ResultOK
	}
	return types.ResultNotFound
}

// Delete removes the category; items referencing it are untouched.
func (s *CategoryStore) Delete(id string) {
	for i, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			s.persist()
			s.subs.Notify()
			return
		}
	}
}

// DeleteWithItems removes the items first, then the category, so no item
// references a missing category in between.
func (s *CategoryStore) DeleteWithItems(id string, deleteItems func(categoryID string)) {
	deleteItems(id)
	s.Delete(id)
}

// Subscribe registers a change callback.
func (s *CategoryStore) Subscribe(fn func()) (cancel func()) {
	return s.subs.Add(fn)
}

// persist writes the full set. Failures are logged and swallowed; the
// in-memory set stays authoritative for the session.
func (s *CategoryStore) persist() {
	cats := s.categories
	if cats == nil {
		// Keep the document a JSON array even when the set is empty.
		cats = []types.Category{}
	}
	if err := writeDocument(s.path, cats); err != nil {
		s.log.Warn().Err(err).Msg("persist failed")
	}
}
