package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enferex/code-ls/internal/app"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the parsed-database cache",
	RunE:  runCacheStatus,
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List cached databases",
	RunE:  runCacheStatus,
}

var cacheWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Remove all cached databases",
	RunE:  runCacheWipe,
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheWipeCmd)
}

func runCacheStatus(cmd *cobra.Command, args []string) error {
	store := openCache()
	if store == nil {
		return fmt.Errorf("cache unavailable")
	}
	defer store.Close()

	entries, err := store.Entries()
	if err != nil {
		return err
	}

	path, _ := app.CachePath()
	fmt.Printf("%scode-ls cache%s │ %s\n", colorBold, colorReset, path)
	if len(entries) == 0 {
		fmt.Println("  (empty)")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("  %-50s %d symbols, %d bytes\n", e.Path, e.Symbols, e.Bytes)
	}
	return nil
}

func runCacheWipe(cmd *cobra.Command, args []string) error {
	store := openCache()
	if store == nil {
		return fmt.Errorf("cache unavailable")
	}
	defer store.Close()

	if err := store.Wipe(); err != nil {
		return err
	}
	fmt.Println("cache wiped")
	return nil
}
