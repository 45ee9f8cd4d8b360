// code-ls reads a cscope cross-reference database and renders a
// per-file tree of function definitions. Read-only: it never builds or
// mutates the database.
package main

import (
	"os"

	"github.com/enferex/code-ls/cmd/code-ls/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
