package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/domain"
)

// PipelineData is the board view input: stages in pipeline order and the
// open deals grouped per stage.
type PipelineData struct {
	Stages       []*domain.Stage
	DealsByStage map[string][]*domain.Deal
}

// FormatPipeline renders the stage board: one section per stage with its
// open deals and a value subtotal.
func FormatPipeline(data PipelineData) string {
	var b strings.Builder

	for i, stage := range data.Stages {
		if i > 0 {
			b.WriteString("\n")
		}
		deals := data.DealsByStage[stage.ID]

		var total float64
		for _, d := range deals {
			if d.Value != nil {
				total += *d.Value
			}
		}

		b.WriteString(Header(stage.Name) + "\n")
		if len(deals) == 0 {
			b.WriteString(Dim("no open deals") + "\n")
			continue
		}

		for _, d := range deals {
			line := fmt.Sprintf("%s %s %s",
				Dim(ShortID(d.ID)), Bold(Truncate(d.Title, 40)), Money(d.Value))
			if d.ExpectedCloseAt != nil {
				line += " " + Dim("(close "+RelativeDate(*d.ExpectedCloseAt)+")")
			}
			b.WriteString(line + "\n")
		}
		b.WriteString(Dim(fmt.Sprintf("%d deal(s), total %s", len(deals), Money(&total))) + "\n")
	}

	return RenderBox("Pipeline", b.String())
}

// FormatStageList renders the stage table in pipeline order.
func FormatStageList(stages []*domain.Stage, openCounts map[string]int) string {
	headers := []string{"ORD", "ID", "NAME", "OPEN DEALS"}
	rows := make([][]string, 0, len(stages))

	for _, s := range stages {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.Ord),
			Dim(ShortID(s.ID)),
			Bold(s.Name),
			fmt.Sprintf("%d", openCounts[s.ID]),
		})
	}

	return RenderBox("Stages", RenderTable(headers, rows))
}
