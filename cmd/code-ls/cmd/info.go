package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <database>",
	Short: "Show database header fields",
	Long:  "Prints the version, project root, trailer offset, and mode flags recorded in the database header.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	loader, cleanup := newLoader()
	defer cleanup()

	db, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	hdr := db.Header
	flags := "(none)"
	if f := hdr.Flags(); len(f) > 0 {
		flags = strings.Join(f, " ")
	}

	fmt.Printf("%scode-ls info%s\n", colorBold, colorReset)
	fmt.Printf("  Version:        %d\n", hdr.Version)
	fmt.Printf("  Root:           %s\n", hdr.Root)
	fmt.Printf("  Trailer offset: %d\n", hdr.TrailerOffset)
	fmt.Printf("  Flags:          %s\n", flags)
	fmt.Printf("  Compressed:     %v\n", hdr.Compressed())
	fmt.Printf("  Symbols:        %d\n", len(db.Symbols))
	return nil
}
