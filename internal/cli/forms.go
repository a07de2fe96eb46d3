package cli

import (
	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dealdeskHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func dealdeskHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// contactForm collects the optional contact fields interactively.
func contactForm(input *service.ContactInput) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Phone").Placeholder("+62 812 3456 789").Value(&input.Phone),
			huh.NewInput().Title("Email").Placeholder("name@example.com").Value(&input.Email),
			huh.NewInput().Title("Company").Value(&input.Company),
			huh.NewText().Title("Notes").Value(&input.Notes).Lines(3),
		),
	).WithTheme(dealdeskHuhTheme()).WithShowHelp(false).Run()
}

// reasonForm prompts for a single required free-text reason, e.g. the lost
// reason or the note for a backward stage move.
func reasonForm(title string, value *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(title).Value(value),
		),
	).WithTheme(dealdeskHuhTheme()).WithShowHelp(false).Run()
}

// confirmForm asks a yes/no question and stores the answer in ok.
func confirmForm(title string, ok *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(ok),
		),
	).WithTheme(dealdeskHuhTheme()).WithShowHelp(false).Run()
}
