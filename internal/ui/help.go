package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Tabs",
			items: []helpItem{
				{"1/2/3", "Painter/Gallery/Calendar"},
				{"tab", "Next tab"},
			},
		},
		{
			title: "Painter",
			items: []helpItem{
				{"p/e/f/i", "Pen/Eraser/Fill/Eyedropper"},
				{"[ ]", "Brush size"},
				{"u ctrl+z", "Undo"},
				{"C", "Clear canvas"},
				{"s", "Save to gallery"},
				{"g", "Cycle grid size"},
				{"0 + -", "Fit/zoom in/zoom out"},
				{"arrows", "Pan"},
				{"c", "Enter hex color"},
				{"y", "Copy color"},
				{", .", "Palette prev/next"},
			},
		},
		{
			title: "Mouse",
			items: []helpItem{
				{"left", "Draw (right: erase-fill)"},
				{"middle", "Pan (or alt+left)"},
				{"wheel", "Zoom at pointer"},
			},
		},
		{
			title: "Gallery",
			items: []helpItem{
				{"j/k", "Move down/up"},
				{"o", "Newest/oldest first"},
				{"z", "Upscaled/original export"},
				{"t", "Set/unset for today"},
				{"x", "Export PNG"},
				{"d", "Delete"},
			},
		},
		{
			title: "Calendar",
			items: []helpItem{
				{"h/l", "Previous/next month"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Toggle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(12)

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	return placeModal(m.theme, m.width, m.height, b.String(), 44)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
