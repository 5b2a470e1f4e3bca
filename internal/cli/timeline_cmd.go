package cli

import (
	"github.com/alexanderramin/casetrail/internal/app"
	"github.com/alexanderramin/casetrail/internal/cli/formatter"
	"github.com/alexanderramin/casetrail/internal/timeline"
	"github.com/spf13/cobra"
)

func newTimelineCmd(a *App, format *formatValue) *cobra.Command {
	var (
		categories []string
		diagram    bool
	)

	cmd := &cobra.Command{
		Use:   "timeline <case-id>",
		Short: "Show the consolidated, chronological history of a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.TimelineRequest{}
			for _, c := range categories {
				cat, err := timeline.ParseCategory(c)
				if err != nil {
					return err
				}
				req.Categories = append(req.Categories, cat)
			}

			caseID, err := resolveCaseID(cmd.Context(), a, args[0])
			if err != nil {
				return err
			}
			req.CaseID = caseID

			resp, err := a.History.Timeline(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if diagram {
				entries := timeline.ToDiagram(resp.Events)
				return render(out, format.resolve(a), entries, func() string {
					return formatter.FormatDiagram(entries)
				})
			}
			return render(out, format.resolve(a), resp.Events, func() string {
				return formatter.FormatTimeline(resp.Events)
			})
		},
	}

	cmd.Flags().StringSliceVar(&categories, "category", nil,
		"only show these categories (PersonalEvents, FamilyUnitEvents, CaseActions, GeneratedDocumentation); repeatable")
	cmd.Flags().BoolVar(&diagram, "diagram", false, "output the flat diagram projection instead of full events")

	return cmd
}
