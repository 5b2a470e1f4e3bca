package cli

import (
	"github.com/alexanderramin/casetrail/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCasesCmd(app *App, format *formatValue) *cobra.Command {
	return &cobra.Command{
		Use:   "cases",
		Short: "List stored cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := app.Cases.List(cmd.Context())
			if err != nil {
				return err
			}

			type caseRow struct {
				ID         string `json:"id"`
				ClientName string `json:"clientName"`
				AssignedTo string `json:"assignedTo"`
				Status     string `json:"status"`
				DateOpened string `json:"dateOpened,omitempty"`
				LastUpdate string `json:"lastUpdate,omitempty"`
				Snapshots  int    `json:"snapshots"`
			}
			rows := make([]caseRow, 0, len(cases))
			for _, c := range cases {
				rows = append(rows, caseRow{
					ID:         c.ID,
					ClientName: c.ClientName,
					AssignedTo: c.AssignedTo,
					Status:     string(c.Status),
					DateOpened: c.DateOpened,
					LastUpdate: c.LastUpdate,
					Snapshots:  len(c.CompositionHistory),
				})
			}

			return render(cmd.OutOrStdout(), format.resolve(app), rows, func() string {
				return formatter.FormatCaseList(cases)
			})
		},
	}
}
