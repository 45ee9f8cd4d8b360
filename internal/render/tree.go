// Package render turns a parsed database into the per-file function
// tree printed by the CLI. Only function definitions are rendered;
// every other record stays in memory for the symbols/stats commands.
package render

import (
	"fmt"
	"strings"

	"github.com/enferex/code-ls/internal/cscope"
)

// fileGroup is one run of consecutive function definitions belonging
// to the same file, in encounter order.
type fileGroup struct {
	name string
	defs []cscope.Symbol
}

// Tree renders the function-definition tree: a heading per file, then
// one connector line per function with the name padded to the longest
// function name in the database. An empty database renders as the
// empty string.
func Tree(db *cscope.Database) string {
	defs := db.FunctionDefs()
	if len(defs) == 0 {
		return ""
	}

	width := 0
	for _, d := range defs {
		if len(d.Name) > width {
			width = len(d.Name)
		}
	}

	var groups []fileGroup
	for _, d := range defs {
		if len(groups) == 0 || groups[len(groups)-1].name != d.Filename {
			groups = append(groups, fileGroup{name: d.Filename})
		}
		g := &groups[len(groups)-1]
		g.defs = append(g.defs, d)
	}

	var sb strings.Builder
	for _, g := range groups {
		sb.WriteString(g.name)
		sb.WriteByte('\n')
		for i, d := range g.defs {
			connector := "├── "
			if i == len(g.defs)-1 {
				connector = "└── "
			}
			sb.WriteString(fmt.Sprintf("%s%-*s  %s  line: %d\n",
				connector, width, d.Name, signature(d), d.LineNumber))
		}
	}
	return sb.String()
}

// signature joins the leading and trailing free text around the symbol
// into a single display string.
func signature(d cscope.Symbol) string {
	return d.LeadingText + " " + d.TrailingText
}
