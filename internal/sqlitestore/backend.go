// Package sqlitestore implements the optional SQLite storage backend. It
// serves the same store interfaces as the JSON backend but avoids rewriting
// a whole document on every mutation, which matters once an inventory grows
// past what a phone-sized collection looks like.
//
// The failure policy matches the JSON backend: statement failures are logged
// and swallowed, reads degrade to empty results.
package sqlitestore

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/stockcount-io/stockcount/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFile is the database file name inside the data directory.
const dbFile = "stockcount.db"

// Backend owns the database handle and the two store accessors.
type Backend struct {
	db         *sql.DB
	categories *CategoryStore
	inventory  *InventoryStore
}

// Open opens (creating if needed) the database under dataDir, applies the
// schema, and seeds the default categories when the table is empty.
func Open(dataDir string, log zerolog.Logger) (*Backend, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFile))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	b := &Backend{db: db}
	b.categories = newCategoryStore(db, log)
	b.inventory = newInventoryStore(db, log)

	if err := b.categories.seedIfEmpty(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding categories: %w", err)
	}
	return b, nil
}

// Categories returns the category store accessor.
func (b *Backend) Categories() types.CategoryStore { return b.categories }

// Inventory returns the inventory store accessor.
func (b *Backend) Inventory() types.InventoryStore { return b.inventory }

// Close releases the database handle.
func (b *Backend) Close() error { return b.db.Close() }
