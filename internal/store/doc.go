// Package store provides file-based persistence for the recovery package.
//
// The package is serialised as pretty-printed JSON and written atomically
// (temp file plus rename) with owner-only permissions. Loads distinguish a
// missing file (ErrNotFound) from unreadable or structurally invalid content
// (ErrMalformed). All methods are concurrency-safe via internal locking.
package store
