package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ymoriya/worktime/internal/cli/formatter"
)

func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open <file>",
		Short: "Start tracking a work session on a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Tracker.Open(context.Background(), args[0])
			if err != nil {
				return err
			}

			if res.Created {
				fmt.Printf("Registered %s\n", res.File.DisplayName())
			}
			if res.Recovered > 0 {
				fmt.Printf("Closed %d stale session(s) left over from a previous run\n", res.Recovered)
			}
			fmt.Printf("Started session #%d on %s\n", res.Session.Seq, res.File.DisplayName())
			return nil
		},
	}
}

func newCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close <file>",
		Short: "End the active work session on a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.Tracker.Close(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Ended session #%d (%s)\n", sess.Seq, formatter.Clock(sess.ActiveTime(*sess.EndedAt)))
			return nil
		},
	}
}

func newPingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ping <file>",
		Short: "Record activity; detects idle gaps as breaks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Tracker.Ping(context.Background(), args[0])
			if err != nil {
				return err
			}
			switch {
			case res.BreakRecorded:
				fmt.Printf("Recorded idle break of %s\n", formatter.Clock(res.IdleGap))
			case res.BreakEnded:
				fmt.Println("Break ended, back to work")
			}
			return nil
		},
	}
}

func newSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save <file>",
		Short: "Record a save checkpoint for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tracker.Save(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Checkpoint recorded")
			return nil
		},
	}
}
