package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/spf13/cobra"
)

func newDealCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Manage deals",
	}

	cmd.AddCommand(
		newDealAddCmd(app),
		newDealListCmd(app),
		newDealShowCmd(app),
		newDealMoveCmd(app),
		newDealWonCmd(app),
		newDealLostCmd(app),
		newDealEditCmd(app),
	)

	return cmd
}

func parseOptionalDate(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", input)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", input, err)
	}
	return &t, nil
}

// stageNameMap builds the stageID -> name lookup the formatters use.
// Dangling references simply miss the map and render as "-".
func stageNameMap(ctx context.Context, app *App) (map[string]string, error) {
	stages, err := app.Stages.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(stages))
	for _, s := range stages {
		names[s.ID] = s.Name
	}
	return names, nil
}

func newDealAddCmd(app *App) *cobra.Command {
	var stage, contact, value, closeBy string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new deal in a stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stageID, err := resolveStageID(ctx, app, stage)
			if err != nil {
				return err
			}

			input := service.DealInput{Title: args[0], StageID: stageID, Value: value}

			if contact != "" {
				contactID, err := resolveContactID(ctx, app, contact)
				if err != nil {
					return err
				}
				input.ContactID = contactID
			}

			if input.ExpectedCloseAt, err = parseOptionalDate(closeBy); err != nil {
				return err
			}

			deal, err := app.Deals.Create(ctx, input)
			if err != nil {
				return err
			}
			fmt.Printf("Created deal %s [%s]\n", deal.Title, formatter.ShortID(deal.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Stage name or ID")
	cmd.Flags().StringVar(&contact, "contact", "", "Contact ID or ID prefix (optional)")
	cmd.Flags().StringVar(&value, "value", "", "Deal value (optional)")
	cmd.Flags().StringVar(&closeBy, "close-by", "", "Expected close date, YYYY-MM-DD (optional)")
	_ = cmd.MarkFlagRequired("stage")

	return cmd
}

func newDealListCmd(app *App) *cobra.Command {
	var stage, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var deals []*domain.Deal
			var err error
			switch {
			case stage != "":
				stageID, rerr := resolveStageID(ctx, app, stage)
				if rerr != nil {
					return rerr
				}
				deals, err = app.Deals.ListOpenByStage(ctx, stageID)
			case status != "":
				deals, err = app.Deals.ListByStatus(ctx, domain.DealStatus(status))
			default:
				deals, err = app.Deals.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(deals) == 0 {
				fmt.Println("No deals found.")
				return nil
			}

			names, err := stageNameMap(ctx, app)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatDealList(deals, names))
			return nil
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Only open deals in this stage")
	cmd.Flags().StringVar(&status, "status", "", "Only deals with this status (open|won|lost)")

	return cmd
}

func newDealShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <deal>",
		Short: "Show a deal with its activities and stage history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			deal, err := app.Deals.GetByID(ctx, id)
			if err != nil {
				return err
			}

			names, err := stageNameMap(ctx, app)
			if err != nil {
				return err
			}

			data := formatter.DealInspectData{Deal: deal, StageNames: names}

			if deal.ContactID != nil {
				// Dangling contact references render as "-", not an error.
				if c, err := app.Contacts.GetByID(ctx, *deal.ContactID); err == nil {
					data.Contact = c
				}
			}
			if data.Activities, err = app.Activities.ListByDeal(ctx, id); err != nil {
				return err
			}
			if data.History, err = app.Deals.History(ctx, id); err != nil {
				return err
			}

			fmt.Println(formatter.FormatDealCard(data))
			return nil
		},
	}
}

func newDealMoveCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "move <deal> <stage>",
		Short: "Move a deal to another stage",
		Long: "Move a deal to another stage. Moving backward in the pipeline\n" +
			"requires a note explaining why.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dealID, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			stageID, err := resolveStageID(ctx, app, args[1])
			if err != nil {
				return err
			}

			if note == "" && app.interactive() {
				deal, derr := app.Deals.GetByID(ctx, dealID)
				if derr != nil {
					return derr
				}
				stages, serr := app.Stages.List(ctx)
				if serr != nil {
					return serr
				}
				if domain.IsBackwardMove(stages, deal.StageID, stageID) {
					if ferr := reasonForm("Reason for moving backward", &note); ferr != nil {
						return ferr
					}
				}
			}

			deal, err := app.Deals.MoveStage(ctx, dealID, stageID, note)
			if err != nil {
				return err
			}

			names, nerr := stageNameMap(ctx, app)
			if nerr != nil {
				return nerr
			}
			fmt.Printf("Moved %s to %s\n", deal.Title, names[deal.StageID])
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Audit note (required for backward moves)")
	return cmd
}

func newDealWonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "won <deal>",
		Short: "Close a deal as won",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}
			deal, err := app.Deals.CloseWon(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Deal %s closed as won.\n", deal.Title)
			return nil
		},
	}
}

func newDealLostCmd(app *App) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "lost <deal>",
		Short: "Close a deal as lost (reason required)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if reason == "" && app.interactive() {
				if err := reasonForm("Why was this deal lost?", &reason); err != nil {
					return err
				}
			}

			deal, err := app.Deals.CloseLost(ctx, id, reason)
			if err != nil {
				return err
			}
			fmt.Printf("Deal %s closed as lost: %s\n", deal.Title, reason)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Why the deal was lost")
	return cmd
}

func newDealEditCmd(app *App) *cobra.Command {
	var title, value, closeBy string

	cmd := &cobra.Command{
		Use:   "edit <deal>",
		Short: "Edit a deal's title, value and expected close date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveDealID(ctx, app, args[0])
			if err != nil {
				return err
			}

			existing, err := app.Deals.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("title") {
				title = existing.Title
			}
			if !cmd.Flags().Changed("value") && existing.Value != nil {
				value = fmt.Sprintf("%g", *existing.Value)
			}
			closeAt := existing.ExpectedCloseAt
			if cmd.Flags().Changed("close-by") {
				if closeAt, err = parseOptionalDate(closeBy); err != nil {
					return err
				}
			}

			deal, err := app.Deals.EditFields(ctx, id, title, value, closeAt)
			if err != nil {
				return err
			}
			fmt.Printf("Updated deal %s\n", deal.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&value, "value", "", "New value (blank clears it)")
	cmd.Flags().StringVar(&closeBy, "close-by", "", "New expected close date, YYYY-MM-DD (blank clears it)")

	return cmd
}
