package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Live dashboard for a tracked file",
		Long: `Shows a continuously updating view of the file's total and session
time. Keys: p records a ping, s records a checkpoint, b toggles a
manual break, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("watch requires an interactive terminal")
			}
			p := tea.NewProgram(newWatchModel(app, args[0]), tea.WithOutput(cmd.OutOrStdout()))
			_, err := p.Run()
			return err
		},
	}
}
