package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/enferex/code-ls/internal/adapters/ahocorasick"
	"github.com/enferex/code-ls/internal/cscope"
	"github.com/enferex/code-ls/internal/ports"
)

var symbolsKind string

var symbolsCmd = &cobra.Command{
	Use:   "symbols <database> [pattern...]",
	Short: "List symbol records",
	Long: "Lists every record in the database, not just function definitions. " +
		"Patterns are matched as substrings against symbol names in a single automaton pass.",
	Args: cobra.MinimumNArgs(1),
	RunE: runSymbols,
}

func init() {
	symbolsCmd.Flags().StringVarP(&symbolsKind, "kind", "k", "",
		"Only records of this kind (e.g. function-def, typedef, unknown)")
}

func runSymbols(cmd *cobra.Command, args []string) error {
	var kind cscope.Mark
	filterKind := symbolsKind != ""
	if filterKind {
		m, ok := cscope.MarkByName(symbolsKind)
		if !ok {
			return fmt.Errorf("unknown kind %q", symbolsKind)
		}
		kind = m
	}

	loader, cleanup := newLoader()
	defer cleanup()

	db, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	var matcher ports.Matcher = &ahocorasick.Matcher{}
	matcher.Build(args[1:])

	for _, sym := range db.Symbols {
		if filterKind && sym.Mark != kind {
			continue
		}
		if !matcher.Matches(sym.Name) {
			continue
		}
		fmt.Printf("%s%s:%d%s  %s  %s\n",
			colorCyan, sym.Filename, sym.LineNumber, colorReset, sym.Mark, sym.Name)
	}
	return nil
}
