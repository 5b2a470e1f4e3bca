package cli

import (
	"github.com/alexanderramin/casetrail/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App, format *formatValue) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a case with its composition history and records from JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportCase(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			summary := map[string]any{
				"caseId":    result.Case.ID,
				"snapshots": result.SnapshotCount,
				"notes":     result.NoteCount,
				"tasks":     result.TaskCount,
				"schedule":  result.ScheduleCount,
			}
			return render(cmd.OutOrStdout(), format.resolve(app), summary, func() string {
				return formatter.FormatImportResult(result)
			})
		},
	}
}
