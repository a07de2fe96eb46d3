package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/domain"
)

// FormatContactList renders a styled contact table inside a bordered box.
func FormatContactList(contacts []*domain.Contact) string {
	headers := []string{"ID", "NAME", "PHONE", "EMAIL", "COMPANY"}
	rows := make([][]string, 0, len(contacts))

	for _, c := range contacts {
		rows = append(rows, []string{
			Dim(ShortID(c.ID)),
			Bold(c.Name),
			OrDash(c.Phone),
			OrDash(c.Email),
			OrDash(c.Company),
		})
	}

	return RenderBox("Contacts", RenderTable(headers, rows))
}

// FormatContactCard renders a single contact with its open deals.
func FormatContactCard(c *domain.Contact, deals []*domain.Deal) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(c.Name) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID     "), Dim(ShortID(c.ID))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("PHONE  "), OrDash(c.Phone)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("EMAIL  "), OrDash(c.Email)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("COMPANY"), OrDash(c.Company)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SINCE  "), DateTime(c.CreatedAt)))

	if c.Notes != nil {
		b.WriteString("\n" + StyleDim.Render("NOTES") + "\n")
		b.WriteString(StyleFg.Render(*c.Notes) + "\n")
	}

	if len(deals) > 0 {
		b.WriteString("\n" + Header("Deals") + "\n")
		for _, d := range deals {
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				StatusIndicator(d.Status), Bold(d.Title), Dim(Money(d.Value))))
		}
	}

	return RenderBox("", b.String())
}
