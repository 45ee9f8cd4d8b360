package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <database>",
	Short: "Show record counts",
	Long:  "Prints how many records the database holds per kind and per file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	loader, cleanup := newLoader()
	defer cleanup()

	db, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s%d symbols%s │ %s\n", colorBold, len(db.Symbols), colorReset, args[0])

	type kindCount struct {
		name  string
		count int
	}
	var kinds []kindCount
	for m, n := range db.CountByMark() {
		kinds = append(kinds, kindCount{name: m.String(), count: n})
	}
	sort.Slice(kinds, func(i, j int) bool {
		if kinds[i].count != kinds[j].count {
			return kinds[i].count > kinds[j].count
		}
		return kinds[i].name < kinds[j].name
	})
	for _, k := range kinds {
		fmt.Printf("  %-16s %d\n", k.name, k.count)
	}

	// Per-file counts, in encounter order.
	counts := make(map[string]int)
	var order []string
	for _, sym := range db.Symbols {
		if counts[sym.Filename] == 0 {
			order = append(order, sym.Filename)
		}
		counts[sym.Filename]++
	}
	if len(order) > 0 {
		fmt.Printf("%sfiles%s\n", colorGray, colorReset)
		for _, f := range order {
			fmt.Printf("  %-40s %d\n", f, counts[f])
		}
	}
	return nil
}
