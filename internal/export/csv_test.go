package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockcount-io/stockcount/internal/jsonstore"
	"github.com/stockcount-io/stockcount/pkg/types"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()

	hoodies := types.NewCategory("Hoodies")
	item := types.NewItem("Gray Hoodie")
	item.Description = "zip-up, brushed fleece"
	item.CategoryID = hoodies.ID
	item.Quantity = 4
	item.CostPrice = decimal.NewFromFloat(12.5)
	item.SalePrice = decimal.NewFromInt(30)
	item.Color = types.ColorGray
	item.Size = types.SizeL
	item.Season = types.SeasonWinter

	path, err := WriteCSV(dir, []types.Item{item}, []types.Category{hoodies})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), filePrefix))
	assert.True(t, strings.HasSuffix(path, ".csv"))

	rows := readRows(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, columns, rows[0])
	assert.Equal(t, []string{
		"Gray Hoodie", "zip-up, brushed fleece", "Hoodies", "4",
		"12.50", "30.00", "gray", "L", "Winter", "", item.ID,
	}, rows[1])
}

func TestWriteCSVCategoryFallsBackToLegacyTag(t *testing.T) {
	dir := t.TempDir()

	uncategorized := types.NewItem("plain tee")
	uncategorized.Legacy = types.LegacyPants

	dangling := types.NewItem("lost scarf")
	dangling.Legacy = types.LegacyHoodies
	dangling.CategoryID = "cat-gone"

	path, err := WriteCSV(dir, []types.Item{uncategorized, dangling}, nil)
	require.NoError(t, err)

	rows := readRows(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "pants", rows[1][2])
	assert.Equal(t, "hoodies", rows[2][2])
}

func TestWriteCSVEmptyInventoryWritesHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteCSV(dir, nil, nil)
	require.NoError(t, err)

	rows := readRows(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, columns, rows[0])
}

func TestClearOldExports(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteCSV(dir, nil, nil)
	require.NoError(t, err)
	_, err = WriteCSV(dir, nil, nil)
	require.NoError(t, err)

	// Unrelated files survive.
	keep := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(keep, []byte("keep"), 0o644))

	assert.Equal(t, 2, ClearOldExports(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes.txt", entries[0].Name())

	t.Run("empty dir removes nothing", func(t *testing.T) {
		assert.Zero(t, ClearOldExports(t.TempDir()))
	})
}

func TestExporterInvalidatesOnStoreChange(t *testing.T) {
	dataDir := t.TempDir()
	log := zerolog.Nop()
	categories := jsonstore.NewCategoryStore(dataDir, log)
	inventory := jsonstore.NewInventoryStore(dataDir, log)

	exportDir := t.TempDir()
	e := NewExporter(categories, inventory, exportDir)
	defer e.Close()

	_, ok := e.Current()
	assert.False(t, ok, "no export yet")

	path, err := e.Export()
	require.NoError(t, err)
	current, ok := e.Current()
	require.True(t, ok)
	assert.Equal(t, path, current)

	inventory.Add(types.NewItem("new arrival"))
	_, ok = e.Current()
	assert.False(t, ok, "inventory change must invalidate the export")

	_, err = e.Export()
	require.NoError(t, err)
	categories.Add("Jackets")
	_, ok = e.Current()
	assert.False(t, ok, "category change must invalidate the export")
}

func TestExporterExportReplacesPreviousFile(t *testing.T) {
	dataDir := t.TempDir()
	log := zerolog.Nop()
	categories := jsonstore.NewCategoryStore(dataDir, log)
	inventory := jsonstore.NewInventoryStore(dataDir, log)

	exportDir := t.TempDir()
	e := NewExporter(categories, inventory, exportDir)
	defer e.Close()

	first, err := e.Export()
	require.NoError(t, err)
	second, err := e.Export()
	require.NoError(t, err)

	_, err = os.Stat(first)
	assert.True(t, os.IsNotExist(err), "the previous export must be removed")
	_, err = os.Stat(second)
	assert.NoError(t, err)
}

func TestExporterCloseStopsInvalidation(t *testing.T) {
	dataDir := t.TempDir()
	log := zerolog.Nop()
	categories := jsonstore.NewCategoryStore(dataDir, log)
	inventory := jsonstore.NewInventoryStore(dataDir, log)

	e := NewExporter(categories, inventory, t.TempDir())
	path, err := e.Export()
	require.NoError(t, err)
	e.Close()

	inventory.Add(types.NewItem("after close"))
	current, ok := e.Current()
	assert.True(t, ok)
	assert.Equal(t, path, current)
}
