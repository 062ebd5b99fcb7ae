// Package reconcile moves items from the legacy fixed category enumeration
// into the dynamic category system and repairs dangling category references.
// It is the only code allowed to rewrite an item's CategoryID or create
// categories on the caller's behalf.
package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/stockcount-io/stockcount/pkg/types"
)

// RecoveredCategoryName is the placeholder name for categories recreated by
// the repair phase. The ID is what matters for repair; the user can rename
// the category afterwards.
const RecoveredCategoryName = "Recovered Category"

// Report summarizes what one reconciliation pass changed.
type Report struct {
	// Migrated counts items whose CategoryID was assigned from a legacy tag.
	Migrated int
	// CategoriesCreated counts categories created to receive migrated items.
	CategoriesCreated int
	// Recovered counts categories recreated for dangling references.
	Recovered int
}

// Clean reports whether the pass changed nothing, the expected outcome of
// every run after the first.
func (r Report) Clean() bool {
	return r.Migrated == 0 && r.CategoriesCreated == 0 && r.Recovered == 0
}

// Run executes one reconciliation pass over both stores. It is idempotent:
// a second run on the same state changes nothing. Run never returns an
// error; storage failures are handled inside the stores.
//
// Phase one migrates every uncategorized item: its legacy tag resolves to a
// category name through the fixed table, the category is created if absent,
// and the item is pointed at it. Items that already reference a category are
// untouched.
//
// Phase two runs after phase one so it also validates references the
// migration just introduced. Every referenced category ID with no matching
// category is recreated under exactly that ID, preserving the item-category
// relationship instead of severing it.
//
// Item mutations are batched and persisted once at the end; category
// creations persist as they happen.
func Run(categories types.CategoryStore, inventory types.InventoryStore, log zerolog.Logger) Report {
	log = log.With().Str("component", "reconcile").Logger()

	var report Report
	assign := make(map[string]string)

	// Phase one: legacy migration.
	for _, item := range inventory.Items() {
		if item.Categorized() {
			continue
		}
		name := item.Legacy.CategoryName()
		cat, ok := categories.FindByName(name)
		if !ok {
			created, result := categories.Add(name)
			if !result.Applied() {
				// Name validation cannot fail here; the table only
				// yields non-empty names. Skip rather than guess.
				log.Warn().Str("name", name).Str("result", string(result)).
					Msg("category create rejected during migration")
				continue
			}
			cat = created
			report.CategoriesCreated++
			log.Info().Str("name", cat.Name).Str("id", cat.ID).Msg("category created for legacy tag")
		}
		assign[item.ID] = cat.ID
	}

	report.Migrated = inventory.AssignCategories(assign)

	// Phase two: dangling-reference repair.
	existing := make(map[string]bool)
	for _, cat := range categories.Categories() {
		existing[cat.ID] = true
	}
	repaired := make(map[string]bool)
	for _, item := range inventory.Items() {
		if !item.Categorized() || existing[item.CategoryID] || repaired[item.CategoryID] {
			continue
		}
		if _, result := categories.Upsert(item.CategoryID, RecoveredCategoryName); !result.Applied() {
			log.Warn().Str("id", item.CategoryID).Str("result", string(result)).
				Msg("category recovery rejected")
			continue
		}
		repaired[item.CategoryID] = true
		report.Recovered++
		log.Info().Str("id", item.CategoryID).Msg("recovered category for dangling reference")
	}

	if report.Clean() {
		log.Debug().Msg("nothing to reconcile")
	} else {
		log.Info().Int("migrated", report.Migrated).
			Int("categories_created", report.CategoriesCreated).
			Int("recovered", report.Recovered).
			Msg("reconciliation applied")
	}
	return report
}
