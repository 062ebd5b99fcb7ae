package sqlitestore

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockcount-io/stockcount/pkg/types"
)

func openTestBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := Open(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestOpenSeedsDefaultCategories(t *testing.T) {
	b := openTestBackend(t)

	cats := b.Categories().Categories()
	require.Len(t, cats, 3)
	assert.Equal(t, "Hoodies", cats[0].Name)
	assert.Equal(t, "Long Sleeves", cats[1].Name)
	assert.Equal(t, "Pants", cats[2].Name)
}

func TestOpenDoesNotReseedExistingData(t *testing.T) {
	dir := t.TempDir()
	b, err := Open(dir, zerolog.Nop())
	require.NoError(t, err)
	b.Categories().Add("Jackets")
	pants, _ := b.Categories().FindByName("Pants")
	b.Categories().Delete(pants.ID)
	require.NoError(t, b.Close())

	reopened, err := Open(dir, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	cats := reopened.Categories().Categories()
	require.Len(t, cats, 3)
	_, ok := reopened.Categories().FindByName("Jackets")
	assert.True(t, ok)
	_, ok = reopened.Categories().FindByName("Pants")
	assert.False(t, ok, "seeding must not resurrect deleted defaults")
}

func TestCategoryStoreMutations(t *testing.T) {
	b := openTestBackend(t)
	s := b.Categories()

	cat, result := s.Add("Jackets")
	assert.Equal(t, types.ResultOK, result)
	got, ok := s.Get(cat.ID)
	require.True(t, ok)
	assert.Equal(t, "Jackets", got.Name)

	t.Run("case-insensitive duplicate rejected", func(t *testing.T) {
		_, result := s.Add("JACKETS")
		assert.Equal(t, types.ResultRejectedDuplicate, result)
	})
	t.Run("empty rejected", func(t *testing.T) {
		_, result := s.Add("  ")
		assert.Equal(t, types.ResultRejectedEmpty, result)
	})

	t.Run("rename", func(t *testing.T) {
		assert.Equal(t, types.ResultOK, s.Rename(cat.ID, "Coats"))
		got, _ := s.Get(cat.ID)
		assert.Equal(t, "Coats", got.Name)

		assert.Equal(t, types.ResultNotFound, s.Rename("missing", "Anything"))
		assert.Equal(t, types.ResultRejectedDuplicate, s.Rename(cat.ID, "pants"))
	})

	t.Run("upsert creates under the requested id", func(t *testing.T) {
		created, result := s.Upsert("cat-7", "Recovered Category")
		assert.Equal(t, types.ResultOK, result)
		assert.Equal(t, "cat-7", created.ID)

		renamed, result := s.Upsert("cat-7", "Accessories")
		assert.Equal(t, types.ResultOK, result)
		assert.Equal(t, "Accessories", renamed.Name)

		_, result = s.Upsert("cat-8", "accessories")
		assert.Equal(t, types.ResultRejectedDuplicate, result)
	})

	t.Run("delete", func(t *testing.T) {
		s.Delete(cat.ID)
		_, ok := s.Get(cat.ID)
		assert.False(t, ok)
	})
}

func TestInventoryStoreMutations(t *testing.T) {
	b := openTestBackend(t)
	inv := b.Inventory()
	pants, _ := b.Categories().FindByName("Pants")

	item := types.NewItem("chinos")
	item.CategoryID = pants.ID
	item.Quantity = 3
	item.CostPrice = decimal.NewFromFloat(19.99)
	item.Color = types.ColorBrown
	inv.Add(item)

	got, ok := inv.Get(item.ID)
	require.True(t, ok)
	assert.Equal(t, "chinos", got.Name)
	assert.True(t, got.CostPrice.Equal(decimal.NewFromFloat(19.99)))
	assert.Equal(t, types.ColorBrown, got.Color)
	assert.Equal(t, pants.ID, got.CategoryID)

	got.Quantity = 5
	inv.Update(got)
	got, _ = inv.Get(item.ID)
	assert.Equal(t, 5, got.Quantity)

	inv.Delete(item.ID)
	_, ok = inv.Get(item.ID)
	assert.False(t, ok)
}

func TestInventoryStorePreservesInsertionOrder(t *testing.T) {
	b := openTestBackend(t)
	inv := b.Inventory()

	inv.Add(types.NewItem("zeta"))
	inv.Add(types.NewItem("alpha"))

	items := inv.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "zeta", items[0].Name)
	assert.Equal(t, "alpha", items[1].Name)
}

func TestInventoryStoreUncategorizedRoundTrip(t *testing.T) {
	b := openTestBackend(t)
	inv := b.Inventory()

	item := types.NewItem("plain tee")
	inv.Add(item)

	got, ok := inv.Get(item.ID)
	require.True(t, ok)
	assert.Empty(t, got.CategoryID)
	assert.False(t, got.Categorized())
	assert.Equal(t, types.LegacyUncategorized, got.Legacy)
}

func TestInventoryStoreCategoryOperations(t *testing.T) {
	b := openTestBackend(t)
	inv := b.Inventory()

	add := func(name, categoryID string, qty int) types.Item {
		it := types.NewItem(name)
		it.CategoryID = categoryID
		it.Quantity = qty
		inv.Add(it)
		return it
	}
	a := add("a", "cat-1", 2)
	add("b", "cat-1", 5)
	c := add("c", "cat-2", 1)

	assert.Len(t, inv.ItemsInCategory("cat-1"), 2)
	assert.Equal(t, 7, inv.TotalQuantityInCategory("cat-1"))

	t.Run("clear references", func(t *testing.T) {
		inv.ClearCategoryReferences("cat-2")
		got, _ := inv.Get(c.ID)
		assert.Empty(t, got.CategoryID)
	})

	t.Run("assign categories", func(t *testing.T) {
		changed := inv.AssignCategories(map[string]string{
			a.ID: "cat-3",
			c.ID: "", // already uncategorized, unchanged
		})
		assert.Equal(t, 1, changed)
		got, _ := inv.Get(a.ID)
		assert.Equal(t, "cat-3", got.CategoryID)
	})

	t.Run("delete in category", func(t *testing.T) {
		inv.DeleteInCategory("cat-1")
		assert.Empty(t, inv.ItemsInCategory("cat-1"))
	})
}

func TestInventoryStoreLegacyTagQueries(t *testing.T) {
	b := openTestBackend(t)
	inv := b.Inventory()

	hoodie := types.NewItem("hoodie")
	hoodie.Legacy = types.LegacyHoodies
	hoodie.Quantity = 4
	inv.Add(hoodie)

	assert.Len(t, inv.ItemsWithLegacyTag(types.LegacyHoodies), 1)
	assert.Equal(t, 4, inv.TotalQuantityWithLegacyTag(types.LegacyHoodies))
	assert.Zero(t, inv.TotalQuantityWithLegacyTag(types.LegacyShorts))
}

func TestStoreSubscriptions(t *testing.T) {
	b := openTestBackend(t)

	catCalls, invCalls := 0, 0
	cancelCat := b.Categories().Subscribe(func() { catCalls++ })
	cancelInv := b.Inventory().Subscribe(func() { invCalls++ })

	b.Categories().Add("Jackets")
	assert.Equal(t, 1, catCalls)

	b.Inventory().Add(types.NewItem("tee"))
	assert.Equal(t, 1, invCalls)

	cancelCat()
	cancelInv()
	b.Categories().Add("Coats")
	b.Inventory().Add(types.NewItem("socks"))
	assert.Equal(t, 1, catCalls)
	assert.Equal(t, 1, invCalls)
}
