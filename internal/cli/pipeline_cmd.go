package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newPipelineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pipeline",
		Short: "Show the stage board with open deals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			snap, err := app.Snapshots.Load(ctx)
			if err != nil {
				return err
			}
			if len(snap.Stages) == 0 {
				fmt.Println("No stages found.")
				return nil
			}

			byStage := make(map[string][]*domain.Deal)
			for _, d := range snap.Deals {
				if d.Status == domain.DealOpen {
					byStage[d.StageID] = append(byStage[d.StageID], d)
				}
			}

			fmt.Println(formatter.FormatPipeline(formatter.PipelineData{
				Stages:       snap.Stages,
				DealsByStage: byStage,
			}))
			return nil
		},
	}
}
