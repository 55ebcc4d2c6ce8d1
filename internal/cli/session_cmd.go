package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ymoriya/worktime/internal/cli/formatter"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage work sessions",
	}

	cmd.AddCommand(
		newSessionSwitchCmd(app),
		newSessionResetCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionSwitchCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "switch <file>",
		Short: "End the current session and start a new one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(app, yes, "End the current session and start a new one?") {
				fmt.Println("Aborted.")
				return nil
			}
			sess, err := app.Tracker.Switch(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Started session #%d\n", sess.Seq)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func newSessionResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset <file>",
		Short: "Restart the current session, dropping its accrued time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(app, yes, "Reset the current session time to zero?") {
				fmt.Println("Aborted.")
				return nil
			}
			if err := app.Tracker.ResetSession(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Reset current session")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <file>",
		Short: "List a file's recorded sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Status.Sessions(context.Background(), args[0])
			if err != nil {
				return err
			}
			if len(list.Sessions) == 0 {
				fmt.Println("No sessions recorded.")
				return nil
			}
			fmt.Print(formatter.FormatSessions(list))
			return nil
		},
	}
}
