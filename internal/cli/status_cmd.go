package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ymoriya/worktime/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	var line bool

	cmd := &cobra.Command{
		Use:   "status [file]",
		Short: "Show tracked time for one file or all files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				statuses, err := app.Status.AllStatus(ctx)
				if err != nil {
					return err
				}
				if len(statuses) == 0 {
					fmt.Println("No tracked files.")
					return nil
				}
				fmt.Print(formatter.FormatStatusList(statuses))
				return nil
			}

			st, err := app.Status.FileStatus(ctx, args[0])
			if err != nil {
				return err
			}
			if line {
				fmt.Println(formatter.FormatStatusLine(st))
				return nil
			}
			fmt.Println(formatter.FormatStatus(st))
			return nil
		},
	}

	cmd.Flags().BoolVar(&line, "line", false, "Compact single-line output for prompts and status bars")
	return cmd
}

func newFilesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List all tracked files",
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := app.Status.AllStatus(context.Background())
			if err != nil {
				return err
			}
			if len(statuses) == 0 {
				fmt.Println("No tracked files.")
				return nil
			}

			headers := []string{"FILE", "PATH", "TOTAL", "SESSIONS"}
			rows := make([][]string, 0, len(statuses))
			for _, st := range statuses {
				rows = append(rows, []string{
					formatter.Bold(st.File.DisplayName()),
					formatter.Dim(st.File.Path),
					formatter.Clock(st.TotalTime),
					fmt.Sprintf("%d", len(st.Data.Sessions)),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset <file>",
		Short: "Wipe a file's tracked time record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(app, yes, "Reset ALL tracked time for this file?") {
				fmt.Println("Aborted.")
				return nil
			}
			if err := app.Tracker.ResetData(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Reset all time tracking data")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
