package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newCommentCmd(app *App) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "comment <file>",
		Short: "Set the current session's comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !cmd.Flags().Changed("message") {
				if !app.interactive() {
					return fmt.Errorf("--message is required when not running interactively")
				}
				current, err := app.Tracker.Comment(ctx, args[0])
				if err != nil {
					return err
				}
				message = current
				if err := commentForm(&message).Run(); err != nil {
					return err
				}
			}

			if err := app.Tracker.SetComment(ctx, args[0], message); err != nil {
				return err
			}
			fmt.Println("Comment updated")
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Comment text")
	return cmd
}

// commentForm returns a single-field huh form pre-filled with the current comment.
func commentForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Session comment").
				Placeholder("what are you working on?").
				Value(value),
		),
	).WithShowHelp(false)
}
