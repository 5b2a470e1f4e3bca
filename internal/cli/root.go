package cli

import (
	"github.com/alexanderramin/casetrail/internal/config"
	"github.com/alexanderramin/casetrail/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and output settings used by CLI commands.
type App struct {
	Cases   service.CaseService
	History service.CaseHistoryService
	Import  service.ImportService

	// Format is the default output format; --format overrides it.
	Format config.Format
	// IsTerminal reports whether stdout is a terminal, which decides what
	// the auto format renders. Nil means not a terminal.
	IsTerminal func() bool
}

// NewRootCmd creates the top-level "casetrail" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	format := newFormatValue(app.Format)

	root := &cobra.Command{
		Use:           "casetrail",
		Short:         "Case history timeline and family genogram for social-work cases",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Var(format, "format", "output format: auto, text or json")

	root.AddCommand(
		newCasesCmd(app, format),
		newImportCmd(app, format),
		newGenogramCmd(app, format),
		newTimelineCmd(app, format),
	)

	return root
}
