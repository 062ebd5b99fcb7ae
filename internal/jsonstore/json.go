// Package jsonstore implements the default storage backend: each collection
// is one JSON array document, rewritten in full on every mutation.
// This file provides document read/write helpers with atomic persistence.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Document file names inside the data directory.
const (
	categoriesFile = "categories.json"
	inventoryFile  = "inventory.json"
)

// readDocument decodes the JSON array at path into v. A missing file or a
// decode failure is not an error: the collection simply starts empty, so v
// is left untouched and ok reports whether anything was decoded.
func readDocument(path string, v any) (ok bool, err error) {
	data, rerr := os.ReadFile(path)
	if rerr != nil {
		if os.IsNotExist(rerr) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", path, rerr)
	}
	if jerr := json.Unmarshal(data, v); jerr != nil {
		return false, fmt.Errorf("decoding %s: %w", path, jerr)
	}
	return true, nil
}

// writeDocument atomically writes v as JSON to path using the temp-file,
// fsync, rename pattern. A failed write leaves the prior file intact.
func writeDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".json-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
