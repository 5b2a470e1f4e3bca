package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/casetrail/internal/app"
	"github.com/alexanderramin/casetrail/internal/domain"
)

// FormatCaseList renders a case table inside a bordered box.
func FormatCaseList(cases []*domain.Case) string {
	if len(cases) == 0 {
		return RenderBox("Cases", Dim("No cases yet. Run `casetrail import <file>` to add one."))
	}

	headers := []string{"ID", "CLIENT", "STATUS", "ASSIGNED", "OPENED", "MEMBERS"}
	rows := make([][]string, 0, len(cases))
	for _, c := range cases {
		members := Dim("--")
		if snap := c.CurrentComposition(); snap != nil {
			members = fmt.Sprintf("%d/%d", len(snap.FamilyUnit), len(snap.HouseholdUnit))
		}
		rows = append(rows, []string{
			TruncID(c.ID),
			Bold(c.ClientName),
			CaseStatusPill(c.Status),
			OrDash(c.AssignedTo),
			OrDash(c.DateOpened),
			members,
		})
	}
	return RenderBox("Cases", RenderTable(headers, rows))
}

// FormatImportResult summarizes an import.
func FormatImportResult(r *app.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("✔ Imported case"), Bold(r.Case.ClientName))
	fmt.Fprintf(&b, "  %s  %s\n", Dim("id       "), r.Case.ID)
	fmt.Fprintf(&b, "  %s  %d\n", Dim("snapshots"), r.SnapshotCount)
	fmt.Fprintf(&b, "  %s  %d\n", Dim("notes    "), r.NoteCount)
	fmt.Fprintf(&b, "  %s  %d\n", Dim("tasks    "), r.TaskCount)
	fmt.Fprintf(&b, "  %s  %d\n", Dim("schedule "), r.ScheduleCount)
	return b.String()
}
