package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of a tree display. Level 0 items are roots.
type TreeItem struct {
	Title  string
	Marker string // rendered before the title, e.g. a gender symbol
	Level  int
	IsLast bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders items as an indented tree with box-drawing connectors
// and right-aligned detail badges. Items must be given in depth-first order.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	maxWidth := 0

	// open[d] reports whether the ancestor at depth d still has siblings
	// below, which decides between a pipe and a blank in the prefix.
	var open []bool
	for idx, item := range items {
		var prefix strings.Builder
		if item.Level > 0 {
			for d := 1; d < item.Level; d++ {
				if d < len(open) && open[d] {
					prefix.WriteString(treePipe)
				} else {
					prefix.WriteString(treeBlank)
				}
			}
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}
		for len(open) <= item.Level {
			open = append(open, false)
		}
		open[item.Level] = !item.IsLast

		line := StyleDim.Render(prefix.String())
		if item.Marker != "" {
			line += item.Marker + " "
		}
		line += item.Title
		contents[idx] = line
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	var b strings.Builder
	for idx, item := range items {
		b.WriteString(contents[idx])
		if item.Detail != "" {
			pad := maxWidth - lipgloss.Width(contents[idx])
			b.WriteString(strings.Repeat(" ", pad) + "  " + StyleBlue.Render("[ "+item.Detail+" ]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
