package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enferex/code-ls/internal/adapters/bbolt"
	"github.com/enferex/code-ls/internal/cscope"
)

// writeTestDatabase writes a one-block database whose only function
// definition is named fn, returning its path.
func writeTestDatabase(t *testing.T, dir, fn string) string {
	t.Helper()
	const prefix = "cscope 15 /root "
	body := "\t@main.c\n\n4 int\n\t$" + fn + "\n(void) {\n\n\t@\n"
	trailer := len(prefix) + 10 + 1 + len(body)
	data := prefix + fmt.Sprintf("%010d", trailer) + "\n" + body + ".files\nmain.c\n"

	path := filepath.Join(dir, "cscope.out")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func newTestLoader(t *testing.T) (*Loader, *bbolt.Store) {
	t.Helper()
	store, err := bbolt.NewStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewLoader(store), store
}

func TestLoader_ParsesOnFirstLoad(t *testing.T) {
	loader, store := newTestLoader(t)
	path := writeTestDatabase(t, t.TempDir(), "main")

	db, err := loader.Load(path)
	require.NoError(t, err)
	require.Len(t, db.Symbols, 1)
	assert.Equal(t, "main", db.Symbols[0].Name)

	// The parse result landed in the persistent cache.
	entries, err := store.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Symbols)
}

func TestLoader_SecondLoadHitsMemoryTier(t *testing.T) {
	loader, _ := newTestLoader(t)
	path := writeTestDatabase(t, t.TempDir(), "main")

	first, err := loader.Load(path)
	require.NoError(t, err)
	second, err := loader.Load(path)
	require.NoError(t, err)

	// Same object back: served from the LRU, not re-parsed.
	assert.Same(t, first, second)
}

func TestLoader_PersistentTierSurvivesNewLoader(t *testing.T) {
	store, err := bbolt.NewStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer store.Close()
	path := writeTestDatabase(t, t.TempDir(), "main")

	first, err := NewLoader(store).Load(path)
	require.NoError(t, err)

	second, err := NewLoader(store).Load(path)
	require.NoError(t, err)
	assert.Equal(t, first.Symbols, second.Symbols)
	assert.Equal(t, first.Header, second.Header)
}

func TestLoader_RebuildInvalidatesCache(t *testing.T) {
	loader, _ := newTestLoader(t)
	dir := t.TempDir()
	path := writeTestDatabase(t, dir, "before")

	db, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "before", db.Symbols[0].Name)

	// Rewrite the database and force a different mtime so the
	// fingerprint changes even on coarse-grained filesystems.
	writeTestDatabase(t, dir, "after_")
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	db, err = loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "after_", db.Symbols[0].Name)
}

func TestLoader_NilCacheStillLoads(t *testing.T) {
	loader := NewLoader(nil)
	path := writeTestDatabase(t, t.TempDir(), "main")

	db, err := loader.Load(path)
	require.NoError(t, err)
	require.Len(t, db.Symbols, 1)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader(nil)

	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.out"))
	require.Error(t, err)
	assert.ErrorIs(t, err, cscope.ErrIO)
}
