package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pixday/internal/gallery"
)

// renderHeader renders the title bar: logo, tabs and gallery state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	tabs := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		label := fmt.Sprintf("%d %s", i+1, title)
		if Tab(i) == m.tab {
			tabs = append(tabs, styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(label))
		}
	}

	left := bg.Render("pixday", styles.Logo) + bg.Spaces(2) + bg.Join(tabs, " ")
	right := m.galleryBadge(styles, bg)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Width(m.width).MaxWidth(m.width).Render(left + bg.Spaces(gap) + right)
}

// galleryBadge summarises the stored gallery or its failure.
func (m Model) galleryBadge(styles Styles, bg BgStyle) string {
	snap := m.snapshot
	switch {
	case snap.LastError != nil && snap.Degraded():
		return bg.Render("storage unavailable", styles.DangerText.Bold(true))
	case snap.LastError != nil:
		return bg.Render("storage retrying", styles.WarningText)
	case !snap.Loaded:
		return bg.Render("loading gallery", styles.MutedText)
	}
	n := len(snap.Entries)
	word := "works"
	if n == 1 {
		word = "work"
	}
	badge := bg.Render(fmt.Sprintf("%d", n), styles.Text) + bg.Spaces(1) + bg.Render(word, styles.MutedText)
	if _, ok := snap.Calendar[m.todayKey()]; ok {
		badge += bg.Spaces(2) + bg.Render("★ today", styles.SuccessText)
	}
	return badge
}

// renderSubBar renders the second header row for the active tab.
func (m Model) renderSubBar() string {
	if m.tab == TabPainter {
		return m.renderToolBar()
	}
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)

	var parts []string
	switch m.tab {
	case TabGallery:
		order := "newest first"
		if m.galleryOldestFirst() {
			order = "oldest first"
		}
		parts = []string{
			bg.Render("sort", styles.MutedText) + bg.Spaces(1) + bg.Render(order, styles.Text),
			bg.Render("export", styles.MutedText) + bg.Spaces(1) + bg.Render(m.prefs.ExportSize, styles.Text),
			bg.Render("→ "+truncateMiddle(m.exporter.Dir, 40), styles.FaintText),
		}
	case TabCalendar:
		parts = []string{bg.Render("today", styles.MutedText) + bg.Spaces(1) + bg.Render(m.todayKey(), styles.Text)}
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Width(m.width).
		MaxWidth(m.width).
		Padding(0, 1).
		Render(bg.Join(parts, "   "))
}

// renderFooter shows the latest status message, or key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	var content string
	switch {
	case m.status.text != "" && m.status.isErr:
		content = styles.DangerText.Render(truncate(m.status.text, m.width-2))
	case m.status.text != "":
		content = styles.SuccessText.Render(truncateMiddle(m.status.text, m.width-2))
	default:
		h := m.help
		h.Styles.ShortKey = styles.WarningText
		h.Styles.ShortDesc = styles.MutedText
		h.Styles.ShortSeparator = styles.FaintText
		content = h.View(tabKeys{keyMap: m.keys, tab: m.tab})
	}

	return styles.Footer.Width(m.width).MaxWidth(m.width).Render(content)
}

func (m Model) todayKey() string {
	return gallery.DateKey(m.now())
}
