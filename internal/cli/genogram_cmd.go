package cli

import (
	"github.com/alexanderramin/casetrail/internal/app"
	"github.com/alexanderramin/casetrail/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newGenogramCmd(a *App, format *formatValue) *cobra.Command {
	return &cobra.Command{
		Use:   "genogram <case-id>",
		Short: "Show the family graph of a case's current composition",
		Long: `Show the family graph inferred from the latest composition snapshot.

Parents are inferred from role labels (hijo/a, padre, madre, ...) and two
people are shown as spouses when they share a child. The JSON form holds
{"nodes": [...], "links": [...]} ready for a family-tree layout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := resolveCaseID(cmd.Context(), a, args[0])
			if err != nil {
				return err
			}
			resp, err := a.History.Genogram(cmd.Context(), app.GenogramRequest{CaseID: caseID})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format.resolve(a), resp.Graph, func() string {
				return formatter.FormatGenogram(resp.Graph, resp.Warnings)
			})
		},
	}
}
