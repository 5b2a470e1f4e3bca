package formatter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/casetrail/internal/genogram"
)

// FormatGenogram renders the graph as a family tree: people without known
// parents are roots and children nest under their first listed parent.
// Spouses are shown as a detail badge.
func FormatGenogram(g genogram.Graph, warnings []string) string {
	if len(g.Nodes) == 0 {
		return RenderBox("Genogram", Dim("No composition recorded for this case."))
	}

	names := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		names[n.Key] = n.Name
	}

	children := make(map[string][]genogram.Node)
	var roots []genogram.Node
	for _, n := range g.Nodes {
		parent := firstKnown(n.Parents, names)
		if parent == "" {
			roots = append(roots, n)
			continue
		}
		children[parent] = append(children[parent], n)
	}

	var items []TreeItem
	seen := make(map[string]bool, len(g.Nodes))
	var walk func(n genogram.Node, level int, last bool)
	walk = func(n genogram.Node, level int, last bool) {
		if seen[n.Key] {
			return
		}
		seen[n.Key] = true
		items = append(items, TreeItem{
			Title:  Bold(OrDash(n.Name)),
			Marker: GenderMark(n.Gender),
			Level:  level,
			IsLast: last,
			Detail: spouseDetail(n, names),
		})
		kids := children[n.Key]
		for i, c := range kids {
			walk(c, level+1, i == len(kids)-1)
		}
	}
	for i, r := range roots {
		walk(r, 0, i == len(roots)-1)
	}
	// Parent cycles leave nodes unreachable from any root; list them flat.
	for _, n := range g.Nodes {
		walk(n, 0, true)
	}

	var b strings.Builder
	b.WriteString(RenderTree(items))
	if len(warnings) > 0 {
		b.WriteString("\n" + StyleRed.Render("Warnings:") + "\n")
		for _, w := range warnings {
			b.WriteString(StyleRed.Render("  ! ") + w + "\n")
		}
	}
	b.WriteString("\n" + Dim(fmt.Sprintf("%d people · ■ male  ● female  ◆ unknown  ∞ spouse", len(g.Nodes))))
	return RenderBox("Genogram", b.String())
}

func firstKnown(keys []string, names map[string]string) string {
	for _, k := range keys {
		if _, ok := names[k]; ok {
			return k
		}
	}
	return ""
}

func spouseDetail(n genogram.Node, names map[string]string) string {
	if len(n.Spouses) == 0 {
		return ""
	}
	spouses := make([]string, 0, len(n.Spouses))
	for _, s := range n.Spouses {
		if name, ok := names[s]; ok && name != "" {
			spouses = append(spouses, name)
		} else {
			spouses = append(spouses, s)
		}
	}
	slices.Sort(spouses)
	return "∞ " + strings.Join(spouses, ", ")
}
