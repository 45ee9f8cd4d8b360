// Package app wires the parser, the bbolt cache, and an in-process
// LRU together. Every command that needs a parsed database goes
// through the Loader.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/enferex/code-ls/internal/cscope"
	"github.com/enferex/code-ls/internal/ports"
)

// lruSize bounds how many parsed databases stay resident. Watch mode
// only ever touches one; the bound matters when the Loader is reused
// across several databases.
const lruSize = 8

// memEntry is one LRU slot: a parsed database pinned to the file
// revision it was parsed from.
type memEntry struct {
	fp ports.Fingerprint
	db *cscope.Database
}

// Loader parses databases with two cache tiers in front: an in-process
// LRU for repeated loads within one run (watch mode), and the bbolt
// store across runs. Both tiers validate the file fingerprint, so a
// rebuilt database is always re-parsed.
type Loader struct {
	cache ports.Cache // nil disables the persistent tier
	mem   *lru.Cache[string, memEntry]
}

// NewLoader creates a Loader. cache may be nil to bypass the
// persistent tier (--no-cache).
func NewLoader(cache ports.Cache) *Loader {
	// lru.New only fails on a non-positive size.
	mem, _ := lru.New[string, memEntry](lruSize)
	return &Loader{cache: cache, mem: mem}
}

// Load returns the parsed database at path, from the freshest cache
// tier that holds the current file revision, parsing only on a full
// miss. Cache write failures are not fatal; the parse result still
// serves the caller.
func (l *Loader) Load(path string) (*cscope.Database, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cscope.ErrIO, err)
	}
	fp, err := fingerprint(abs)
	if err != nil {
		return nil, err
	}

	if e, ok := l.mem.Get(abs); ok && e.fp == fp {
		return e.db, nil
	}

	if l.cache != nil {
		db, err := l.cache.Load(abs, fp)
		if err != nil {
			return nil, fmt.Errorf("cache load: %w", err)
		}
		if db != nil {
			l.mem.Add(abs, memEntry{fp: fp, db: db})
			return db, nil
		}
	}

	db, err := cscope.ParseFile(abs)
	if err != nil {
		return nil, err
	}
	if l.cache != nil {
		_ = l.cache.Save(abs, fp, db)
	}
	l.mem.Add(abs, memEntry{fp: fp, db: db})
	return db, nil
}

// fingerprint stats path and returns its current revision identity.
func fingerprint(path string) (ports.Fingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ports.Fingerprint{}, fmt.Errorf("%w: %v", cscope.ErrIO, err)
	}
	return ports.Fingerprint{ModTime: info.ModTime().UnixNano(), Size: info.Size()}, nil
}

// CachePath returns the default location of the persistent cache.
func CachePath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "code-ls", "cache.db"), nil
}
