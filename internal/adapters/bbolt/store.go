// Package bbolt implements the ports.Cache interface using bbolt
// (embedded B+ tree). One bucket holds all cached databases, keyed by
// absolute database path, as JSON blobs carrying a file fingerprint.
// Writes are transactional, so a crash mid-write cannot corrupt
// previously committed entries.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/enferex/code-ls/internal/cscope"
	"github.com/enferex/code-ls/internal/ports"
	bolt "go.etcd.io/bbolt"
)

var bucketDatabases = []byte("databases")

// Store implements ports.Cache backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt cache at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// entryJSON is the serialized form of one cached database.
type entryJSON struct {
	Fingerprint ports.Fingerprint `json:"fingerprint"`
	Header      cscope.Header     `json:"header"`
	Symbols     []cscope.Symbol   `json:"symbols"`
}

// Save persists a parsed database, overwriting any prior entry for
// this path.
func (s *Store) Save(path string, fp ports.Fingerprint, db *cscope.Database) error {
	if db == nil {
		return fmt.Errorf("nil database")
	}
	data, err := json.Marshal(entryJSON{
		Fingerprint: fp,
		Header:      db.Header,
		Symbols:     db.Symbols,
	})
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketDatabases)
		if err != nil {
			return err
		}
		return b.Put([]byte(path), data)
	})
}

// Load retrieves the parsed database for path. Returns nil, nil on a
// miss or when the stored fingerprint does not match fp.
func (s *Store) Load(path string, fp ports.Fingerprint) (*cscope.Database, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDatabases)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get([]byte(path)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var e entryJSON
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("unmarshal entry for %q: %w", path, err)
	}
	if e.Fingerprint != fp {
		// Stale: the database file changed since this entry was saved.
		return nil, nil
	}
	return &cscope.Database{Header: e.Header, Symbols: e.Symbols}, nil
}

// Entries lists all cached databases.
func (s *Store) Entries() ([]ports.CacheEntry, error) {
	var entries []ports.CacheEntry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDatabases)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var e entryJSON
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("unmarshal entry for %q: %w", k, err)
			}
			entries = append(entries, ports.CacheEntry{
				Path:        string(k),
				Fingerprint: e.Fingerprint,
				Symbols:     len(e.Symbols),
				Bytes:       len(v),
			})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes the entry for path. Idempotent: deleting a
// nonexistent entry is not an error.
func (s *Store) Delete(path string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDatabases)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(path))
	})
}

// Wipe removes every entry.
func (s *Store) Wipe() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketDatabases); err == bolt.ErrBucketNotFound {
			return nil // idempotent
		} else {
			return err
		}
	})
}
