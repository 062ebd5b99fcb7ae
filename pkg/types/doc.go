// Package types defines the Category and Item entity types, the store
// interfaces, mutation result values, and backend configuration for the
// stockcount storage system.
package types
