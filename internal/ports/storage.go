// Package ports defines the interfaces (contracts) that adapters must
// implement. Domain logic and the app layer depend only on these
// interfaces, never on concrete implementations.
package ports

import "github.com/enferex/code-ls/internal/cscope"

// Fingerprint identifies one on-disk revision of a database file.
// cscope rewrites the whole file on every rebuild, so mtime plus size
// is enough to detect staleness.
type Fingerprint struct {
	ModTime int64 `json:"mtime"`
	Size    int64 `json:"size"`
}

// Cache persists parsed databases so repeated renders of an unchanged
// database skip the parse. Entries are keyed by the absolute database
// path and validated against a Fingerprint on load.
//
// Crash safety: Save must be transactional. A crash mid-write must not
// corrupt previously committed entries.
type Cache interface {
	// Save persists a parsed database, overwriting any prior entry for
	// this path.
	Save(path string, fp Fingerprint, db *cscope.Database) error

	// Load retrieves the parsed database for path. Returns nil, nil on
	// a miss, including when the stored fingerprint does not match fp
	// (the entry is stale).
	Load(path string, fp Fingerprint) (*cscope.Database, error)

	// Entries lists all cached databases.
	Entries() ([]CacheEntry, error)

	// Delete removes the entry for path. Idempotent: deleting a
	// nonexistent entry is not an error.
	Delete(path string) error

	// Wipe removes every entry.
	Wipe() error

	// Close releases the underlying store.
	Close() error
}

// CacheEntry describes one cached database for the cache command.
type CacheEntry struct {
	Path        string
	Fingerprint Fingerprint
	Symbols     int
	Bytes       int
}
