package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nosh/internal/model"
	"nosh/internal/util"
)

// View renders the UI. Precedence between concurrent flags is strict:
// error banner, then manual form (when not loading), then loader, then
// results, then the welcome placeholder.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.keys, m.width, m.height)
	}

	header := m.renderHeader()
	footer := RenderHelp(m.keys, m.session.ShowManual, m.width)

	var sections []string

	if m.session.ErrorKey != "" {
		sections = append(sections, ErrorStyle.Render(m.text.ErrorText(m.session.ErrorKey)))
	}

	if m.session.ShowManual && m.session.Phase != model.PhaseLoading {
		sections = append(sections, m.renderManualForm())
	}

	switch {
	case m.session.Phase == model.PhaseLoading:
		sections = append(sections, m.spin.View()+" "+m.text.SearchingText+"…")
	case m.session.Phase == model.PhaseResults:
		sections = append(sections, m.renderResults())
	default:
		if len(sections) == 0 {
			sections = append(sections,
				LabelStyle.Render(m.text.Tagline),
				"",
				MutedStyle.Render(m.text.Welcome),
			)
		}
	}

	align := lipgloss.Left
	if m.rtl {
		align = lipgloss.Right
	}

	contentHeight := m.height - 4 // header + footer + padding
	content := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Align(align).
		Padding(1, 2).
		Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m Model) renderHeader() string {
	left := "  " + HeaderStyle.Render(m.text.Title)
	if m.hasFix {
		left += MutedStyle.Render(" @ " + util.FormatCoordinates(m.coords))
	}

	right := MutedStyle.Render(m.text.LanguageLabel+": ") +
		LabelStyle.Render(m.language.Name) + "  "

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return TitleStyle.Width(m.width).Render(left + strings.Repeat(" ", padding) + right)
}

func (m Model) renderManualForm() string {
	formWidth := m.width - 8
	if formWidth > 60 {
		formWidth = 60
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		LabelStyle.Render(m.text.ManualPrompt),
		ActiveBorderStyle.Width(formWidth).Render(m.manualInput.View()),
		MutedStyle.Render(m.text.ManualButton+": enter"),
	)
}

func (m Model) renderResults() string {
	if len(m.session.Restaurants) == 0 {
		return EmptyStateStyle.Render(m.text.NoResults)
	}

	descWidth := m.width - 8
	if descWidth < 20 {
		descWidth = 20
	}

	lines := []string{LabelStyle.Render(m.text.ResultsTitle), ""}
	for _, r := range m.session.Restaurants {
		lines = append(lines,
			RestaurantNameStyle.Render(r.Name)+"  "+CuisineStyle.Render(r.Cuisine),
			MutedStyle.Render("  "+util.TruncateString(r.Description, descWidth)),
		)
	}

	return strings.Join(lines, "\n")
}
