package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ymoriya/worktime/internal/cli/formatter"
	"github.com/ymoriya/worktime/internal/domain"
)

// reasonValue is a pflag.Value restricting --reason to known break reasons.
type reasonValue domain.BreakReason

var _ pflag.Value = (*reasonValue)(nil)

func (v *reasonValue) String() string { return string(*v) }
func (v *reasonValue) Type() string   { return "reason" }

func (v *reasonValue) Set(s string) error {
	if !domain.ValidBreakReasons[s] {
		return fmt.Errorf("invalid reason %q (expected idle or manual)", s)
	}
	*v = reasonValue(s)
	return nil
}

func newBreakCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "break",
		Short: "Manage breaks within the current session",
	}

	cmd.AddCommand(
		newBreakStartCmd(app),
		newBreakEndCmd(app),
		newBreakClearCmd(app),
	)

	return cmd
}

func newBreakStartCmd(app *App) *cobra.Command {
	reason := reasonValue(domain.BreakManual)
	var comment string

	cmd := &cobra.Command{
		Use:   "start <file>",
		Short: "Start a break on the current session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.Tracker.StartBreak(context.Background(), args[0], domain.BreakReason(reason), comment)
			if err != nil {
				return err
			}
			fmt.Printf("Break started (%s)\n", b.Reason)
			return nil
		},
	}

	cmd.Flags().Var(&reason, "reason", "Break reason: idle or manual")
	cmd.Flags().StringVar(&comment, "comment", "", "Break comment")
	return cmd
}

func newBreakEndCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "end <file>",
		Short: "End the open break",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := app.Tracker.EndBreak(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Break ended after %s\n", formatter.Clock(b.EndedAt.Sub(b.StartedAt)))
			return nil
		},
	}
}

func newBreakClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear <file>",
		Short: "Discard all recorded breaks for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(app, yes, "Delete all recorded breaks?") {
				fmt.Println("Aborted.")
				return nil
			}
			if err := app.Tracker.ClearBreaks(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Break history cleared")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
