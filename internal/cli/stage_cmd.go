package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stage",
		Short: "Manage pipeline stages",
	}

	cmd.AddCommand(
		newStageAddCmd(app),
		newStageListCmd(app),
		newStageRenameCmd(app),
		newStageSwapCmd(app),
	)

	return cmd
}

func newStageAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a stage at the end of the pipeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, err := app.Stages.Create(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Created stage %s (ord %d)\n", stage.Name, stage.Ord)
			return nil
		},
	}
}

func newStageListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stages in pipeline order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			stages, err := app.Stages.List(ctx)
			if err != nil {
				return err
			}
			if len(stages) == 0 {
				fmt.Println("No stages found.")
				return nil
			}

			counts := make(map[string]int, len(stages))
			for _, s := range stages {
				open, err := app.Deals.ListOpenByStage(ctx, s.ID)
				if err != nil {
					return err
				}
				counts[s.ID] = len(open)
			}

			fmt.Println(formatter.FormatStageList(stages, counts))
			return nil
		},
	}
}

func newStageRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <stage> <new-name>",
		Short: "Rename a stage without changing its position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveStageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			stage, err := app.Stages.Rename(ctx, id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Renamed stage to %s\n", stage.Name)
			return nil
		},
	}
}

func newStageSwapCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "swap <stage> <stage>",
		Short: "Swap the pipeline positions of two stages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			aID, err := resolveStageID(ctx, app, args[0])
			if err != nil {
				return err
			}
			bID, err := resolveStageID(ctx, app, args[1])
			if err != nil {
				return err
			}
			if err := app.Stages.SwapOrder(ctx, aID, bID); err != nil {
				return err
			}
			fmt.Println("Swapped stage order.")
			return nil
		},
	}
}
