package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/casetrail/internal/timeline"
)

const (
	timelineDate   = "2006-01-02"
	undatedLabel   = "sin fecha"
	maxTitleRunes  = 60
	maxPersonNames = 3
)

// FormatTimeline renders events in their given order, one entry per event
// with its category, kind and related persons.
func FormatTimeline(events []timeline.Event) string {
	if len(events) == 0 {
		return RenderBox("Timeline", Dim("No events."))
	}

	var b strings.Builder
	for i, e := range events {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s  %s\n",
			StyleFg.Render(eventDate(e)),
			CategoryStyle(e.Category).Render("●"),
			Bold(Truncate(e.Title, maxTitleRunes)),
		)
		meta := e.Kind.Label() + " · " + CategoryBadge(e.Category)
		fmt.Fprintf(&b, "%s  %s\n", strings.Repeat(" ", len(timelineDate)+3), Dim(meta))
		if people := relatedNames(e.RelatedPersons); people != "" {
			fmt.Fprintf(&b, "%s  %s\n", strings.Repeat(" ", len(timelineDate)+3), Dim(people))
		}
	}
	b.WriteString("\n" + Dim(fmt.Sprintf("%d events", len(events))))
	return RenderBox("Timeline", b.String())
}

// FormatDiagram renders the diagram projection as a table.
func FormatDiagram(entries []timeline.DiagramEvent) string {
	headers := []string{"DATE", "TYPE", "CATEGORY", "TEXT"}
	rows := make([][]string, 0, len(entries))
	for _, d := range entries {
		rows = append(rows, []string{
			OrDash(d.Date),
			d.EventType,
			CategoryBadge(d.Category),
			Truncate(d.Text, maxTitleRunes),
		})
	}
	return RenderBox("Timeline diagram", RenderTable(headers, rows))
}

func eventDate(e timeline.Event) string {
	if e.HasDate() {
		return e.Date.Format(timelineDate)
	}
	return fmt.Sprintf("%-*s", len(timelineDate), undatedLabel)
}

func relatedNames(people []timeline.RelatedPerson) string {
	if len(people) == 0 {
		return ""
	}
	names := make([]string, 0, maxPersonNames)
	for i, p := range people {
		if i == maxPersonNames {
			names = append(names, fmt.Sprintf("+%d", len(people)-maxPersonNames))
			break
		}
		if p.Relationship != "" {
			names = append(names, fmt.Sprintf("%s (%s)", p.FullName, p.Relationship))
		} else {
			names = append(names, p.FullName)
		}
	}
	return strings.Join(names, ", ")
}
