package cli

import (
	"github.com/spf13/cobra"
	"github.com/ymoriya/worktime/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tracker service.TrackerService
	Status  service.StatusService
	Reports service.ReportService

	// IsInteractive reports whether stdin is attached to a terminal;
	// interactive prompts and forms are skipped when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "worktime" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "worktime",
		Short: "Per-file work session and break tracker",
		Long: `worktime records how long you actively work on a file, split into
sessions and breaks. Editors and hooks drive it through the lifecycle
commands (open, ping, save, close); the record is an append-only event
log, so totals are always rebuilt from first principles.`,
	}

	root.AddCommand(
		newOpenCmd(app),
		newCloseCmd(app),
		newPingCmd(app),
		newSaveCmd(app),
		newSessionCmd(app),
		newBreakCmd(app),
		newCommentCmd(app),
		newStatusCmd(app),
		newReportCmd(app),
		newFilesCmd(app),
		newResetCmd(app),
		newWatchCmd(app),
	)

	return root
}
