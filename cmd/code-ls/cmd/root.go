package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/enferex/code-ls/internal/adapters/bbolt"
	"github.com/enferex/code-ls/internal/app"
)

var rootCmd = &cobra.Command{
	Use:          "code-ls",
	Short:        "code-ls: a cscope database reader",
	Long:         "Renders a per-file tree of function definitions from a cscope cross-reference database. Read-only.",
	SilenceUsage: true,
}

var noCache bool

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Bypass the parsed-database cache")

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(cacheCmd)
}

// newLoader builds the database loader, with the persistent cache tier
// unless --no-cache is set or the cache cannot be opened. A cache that
// fails to open degrades to parse-every-time rather than failing the
// command. The returned cleanup closes the cache store.
func newLoader() (*app.Loader, func()) {
	if noCache {
		return app.NewLoader(nil), func() {}
	}
	store := openCache()
	if store == nil {
		return app.NewLoader(nil), func() {}
	}
	return app.NewLoader(store), func() { store.Close() }
}

// openCache opens the bbolt cache store, creating its directory on
// first use. Returns nil (with a note on stderr) when unavailable.
func openCache() *bbolt.Store {
	path, err := app.CachePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "note: cache unavailable: %v\n", err)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "note: cache unavailable: %v\n", err)
		return nil
	}
	store, err := bbolt.NewStore(path)
	if err != nil {
		if isCacheLockError(err) {
			fmt.Fprintf(os.Stderr, "note: %s\n", diagnoseCacheLock())
		} else {
			fmt.Fprintf(os.Stderr, "note: cache unavailable: %v\n", err)
		}
		return nil
	}
	return store
}
