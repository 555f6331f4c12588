package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders the context-sensitive help footer.
func RenderHelp(keys KeyMap, manualOpen bool, width int) string {
	var entries []key.Binding
	if manualOpen {
		entries = []key.Binding{keys.Submit, keys.Cancel, keys.Language, keys.Quit}
	} else {
		entries = []key.Binding{keys.Find, keys.Manual, keys.Language, keys.Help, keys.Quit}
	}

	parts := make([]string, 0, len(entries))
	for _, b := range entries {
		parts = append(parts, helpKey(b.Help().Key, b.Help().Desc))
	}
	return FooterStyle.Width(width).Render(strings.Join(parts, "  "))
}

func helpKey(k, desc string) string {
	return HelpKeyStyle.Render(k) + " " + HelpDescStyle.Render(desc)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(keys KeyMap, width, height int) string {
	items := []struct {
		key  string
		desc string
	}{
		{keys.Find.Help().Key, "search for restaurants near your current position"},
		{keys.Manual.Help().Key, "type a city or address to search instead"},
		{keys.Language.Help().Key, "cycle the display language"},
		{keys.Submit.Help().Key, "submit the typed location"},
		{keys.Cancel.Help().Key, "close the location form"},
		{keys.Help.Help().Key, "toggle this help"},
		{keys.Quit.Help().Key, "quit"},
	}

	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}

	body := lipgloss.NewStyle().
		Width(width - 4).
		Height(height - 6).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		body,
		FooterStyle.Width(width).Render(helpKey("esc", "close help")),
	)
}
