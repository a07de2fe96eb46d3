package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Track calls, emails, meetings and tasks on a deal",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityListCmd(app),
		newActivityDoneCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var actType, due string

	cmd := &cobra.Command{
		Use:   "add <deal> <note>",
		Short: "Log an activity on a deal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			dueAt, err := parseOptionalDate(due)
			if err != nil {
				return err
			}

			act, err := app.Activities.Add(ctx, dealID, actType, args[1], dueAt)
			if err != nil {
				return err
			}
			fmt.Printf("Logged %s activity [%s]\n", act.Type, formatter.ShortID(act.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&actType, "type", "note", "Activity type (call|meeting|task|note)")
	cmd.Flags().StringVar(&due, "due", "", "Due date, YYYY-MM-DD (optional)")

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <deal>",
		Short: "List a deal's activities, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			activities, err := app.Activities.ListByDeal(ctx, dealID)
			if err != nil {
				return err
			}
			if len(activities) == 0 {
				fmt.Println("No activities found.")
				return nil
			}
			fmt.Println(formatter.FormatActivityList(activities))
			return nil
		},
	}
}

func newActivityDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <deal> <activity>",
		Short: "Mark an activity as done",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			id, err := resolveActivityID(ctx, app, dealID, args[1])
			if err != nil {
				return err
			}
			act, err := app.Activities.MarkDone(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Marked %s activity as done.\n", act.Type)
			return nil
		},
	}
}
