package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/domain"
)

// DealInspectData holds everything needed to render a deal card: the deal
// itself plus lookup maps for its weak references and the audit trail.
type DealInspectData struct {
	Deal       *domain.Deal
	StageNames map[string]string // stageID -> name; dangling ids fall back to "-"
	Contact    *domain.Contact   // nil when unset or dangling
	Activities []*domain.Activity
	History    []*domain.StageHistory
}

// FormatDealList renders a styled deal table inside a bordered box.
func FormatDealList(deals []*domain.Deal, stageNames map[string]string) string {
	headers := []string{"ID", "TITLE", "STAGE", "STATUS", "VALUE", "CLOSE BY"}
	rows := make([][]string, 0, len(deals))

	for _, d := range deals {
		rows = append(rows, []string{
			Dim(ShortID(d.ID)),
			Bold(Truncate(d.Title, 40)),
			stageName(stageNames, d.StageID),
			StatusIndicator(d.Status),
			Money(d.Value),
			Date(d.ExpectedCloseAt),
		})
	}

	return RenderBox("Deals", RenderTable(headers, rows))
}

// FormatDealCard renders a full deal view with activities and stage history.
func FormatDealCard(data DealInspectData) string {
	d := data.Deal
	var b strings.Builder

	b.WriteString(StyleBold.Render(d.Title) + "\n")
	b.WriteString(StatusIndicator(d.Status) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID      "), Dim(ShortID(d.ID))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STAGE   "), stageName(data.StageNames, d.StageID)))
	contact := "-"
	if data.Contact != nil {
		contact = data.Contact.Name
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CONTACT "), contact))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("VALUE   "), Money(d.Value)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CLOSE BY"), Date(d.ExpectedCloseAt)))

	switch d.Status {
	case domain.DealWon:
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("WON AT  "), Date(d.WonAt)))
	case domain.DealLost:
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("LOST AT "), Date(d.LostAt)))
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("REASON  "), OrDash(d.LostReason)))
	}

	if len(data.Activities) > 0 {
		b.WriteString("\n" + Header("Activities") + "\n")
		for _, a := range data.Activities {
			b.WriteString(formatActivityLine(a) + "\n")
		}
	}

	if len(data.History) > 0 {
		b.WriteString("\n" + Header("Stage History") + "\n")
		for _, h := range data.History {
			b.WriteString(formatHistoryLine(h, data.StageNames) + "\n")
		}
	}

	return RenderBox("", b.String())
}

// FormatActivityList renders activities for one deal.
func FormatActivityList(activities []*domain.Activity) string {
	headers := []string{"ID", "TYPE", "NOTE", "DUE", "DONE"}
	rows := make([][]string, 0, len(activities))

	for _, a := range activities {
		done := Dim("no")
		if a.Done {
			done = StyleGreen.Render("yes")
		}
		rows = append(rows, []string{
			Dim(ShortID(a.ID)),
			string(a.Type),
			Truncate(a.Note, 50),
			Date(a.DueAt),
			done,
		})
	}

	return RenderBox("Activities", RenderTable(headers, rows))
}

func formatActivityLine(a *domain.Activity) string {
	check := StyleDim.Render("[ ]")
	if a.Done {
		check = StyleGreen.Render("[x]")
	}
	line := fmt.Sprintf("%s %s %s", check, StylePurple.Render(string(a.Type)), a.Note)
	if a.DueAt != nil {
		line += " " + Dim("(due "+RelativeDate(*a.DueAt)+")")
	}
	return line
}

func formatHistoryLine(h *domain.StageHistory, stageNames map[string]string) string {
	from := "-"
	if h.FromStageID != nil {
		from = stageName(stageNames, *h.FromStageID)
	}
	line := fmt.Sprintf("%s  %s → %s",
		Dim(DateTime(h.CreatedAt)), from, stageName(stageNames, h.ToStageID))
	if h.Note != nil {
		line += "  " + Dim(*h.Note)
	}
	return line
}

func stageName(stageNames map[string]string, stageID string) string {
	if name, ok := stageNames[stageID]; ok {
		return name
	}
	return "-"
}
