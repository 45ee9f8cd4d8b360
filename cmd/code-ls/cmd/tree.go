package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enferex/code-ls/internal/render"
)

var treeCmd = &cobra.Command{
	Use:   "tree <database>",
	Short: "Show the function-definition tree",
	Long:  "Parses the database and prints each file with its function definitions, aligned and in encounter order.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func runTree(cmd *cobra.Command, args []string) error {
	loader, cleanup := newLoader()
	defer cleanup()

	db, err := loader.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Print(render.Tree(db))
	return nil
}
