package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	fsw "github.com/enferex/code-ls/internal/adapters/fsnotify"
	"github.com/enferex/code-ls/internal/ports"
	"github.com/enferex/code-ls/internal/render"
)

var watchCmd = &cobra.Command{
	Use:   "watch <database>",
	Short: "Re-render on database rebuild",
	Long:  "Renders the function tree, then watches the database file and re-renders every time cscope rewrites it. Ctrl-C to stop.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	dbPath := args[0]
	loader, cleanup := newLoader()
	defer cleanup()

	renderOnce := func() {
		db, err := loader.Load(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		fmt.Printf("%s── %s ── %s%s\n", colorGray, dbPath,
			time.Now().Format("15:04:05"), colorReset)
		fmt.Print(render.Tree(db))
	}
	renderOnce()

	fw, err := fsw.NewWatcher()
	if err != nil {
		return err
	}
	var watcher ports.Watcher = fw
	defer watcher.Stop()

	if err := watcher.Watch(dbPath, renderOnce); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
