package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pixday/internal/gallery"
	"github.com/five82/pixday/internal/prefs"
)

func (m Model) galleryOldestFirst() bool {
	return m.prefs.GallerySort == prefs.SortOldest
}

// galleryEntries returns the entries in display order. The store lists
// newest first.
func (m Model) galleryEntries() []gallery.Entry {
	entries := m.snapshot.Entries
	if !m.galleryOldestFirst() {
		return entries
	}
	out := make([]gallery.Entry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}

func (m Model) selectedEntry() (gallery.Entry, bool) {
	entries := m.galleryEntries()
	if m.gallerySel < 0 || m.gallerySel >= len(entries) {
		return gallery.Entry{}, false
	}
	return entries[m.gallerySel], true
}

// handleGalleryKey processes keyboard input for the gallery tab.
func (m Model) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.snapshot.Entries)

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.gallerySel < count-1 {
			m.gallerySel++
		}
	case key.Matches(msg, m.keys.Up):
		if m.gallerySel > 0 {
			m.gallerySel--
		}
	case key.Matches(msg, m.keys.ToggleSort):
		if m.galleryOldestFirst() {
			m.prefs.GallerySort = prefs.SortNewest
		} else {
			m.prefs.GallerySort = prefs.SortOldest
		}
		// Keep the same work selected.
		if count > 0 {
			m.gallerySel = count - 1 - m.gallerySel
		}
		return m, m.savePrefsCmd()
	case key.Matches(msg, m.keys.ExportSize):
		if m.prefs.ExportSize == prefs.ExportOriginal {
			m.prefs.ExportSize = prefs.ExportUpscaled
		} else {
			m.prefs.ExportSize = prefs.ExportOriginal
		}
		m.setStatus("Export size: " + m.prefs.ExportSize)
		return m, m.savePrefsCmd()
	}

	entry, ok := m.selectedEntry()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.BindToday):
		if m.snapshot.Calendar[m.todayKey()] == entry.ID {
			m.modal = newConfirm(confirmUnbind, entry.ID, "Remove this work from today's calendar?")
		} else {
			m.modal = newConfirm(confirmBind, entry.ID, "Show this work as today's picture?")
		}
	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd(entry)
	case key.Matches(msg, m.keys.Delete):
		m.modal = newConfirm(confirmDelete, entry.ID, "Delete this work?")
	}
	return m, nil
}

// renderGallery renders the entry list and a preview of the selection.
func (m Model) renderGallery(area rect) string {
	styles := m.theme.Styles()
	box := lipgloss.NewStyle().Width(area.W).Height(area.H).MaxHeight(area.H)

	if !m.snapshot.Loaded {
		return box.Render(styles.MutedText.Render(" Loading gallery..."))
	}
	entries := m.galleryEntries()
	if len(entries) == 0 {
		return box.Render(styles.MutedText.Render(" No artwork yet. Draw something in the Painter tab and press s."))
	}

	listW := min(galleryListWidth, area.W)
	list := m.renderGalleryList(entries, listW, area.H)

	previewW := area.W - listW - 2
	if previewW < 4 || area.H < 3 {
		return box.Render(list)
	}
	preview := m.renderGalleryPreview(previewW, area.H)

	return box.Render(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", preview))
}

func (m Model) renderGalleryList(entries []gallery.Entry, width, height int) string {
	styles := m.theme.Styles()
	today := m.snapshot.Calendar[m.todayKey()]

	// Scroll so the selection stays visible.
	start := 0
	if m.gallerySel >= height {
		start = m.gallerySel - height + 1
	}
	end := min(len(entries), start+height)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		e := entries[i]
		star := "  "
		if e.ID == today {
			star = " ★"
		}
		text := fmt.Sprintf(" %s  %-7s%s", e.CreatedAt.Local().Format("2006-01-02 15:04"), sizeLabel(e.GridSize), star)
		style := styles.Text
		if i == m.gallerySel {
			style = styles.Selected
		}
		lines = append(lines, style.Width(width).MaxWidth(width).Render(text))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderGalleryPreview(width, height int) string {
	styles := m.theme.Styles()
	entry, ok := m.selectedEntry()
	if !ok {
		return ""
	}

	caption := styles.MutedText.Render(fmt.Sprintf("%s · saved %s",
		sizeLabel(entry.GridSize), entry.CreatedAt.Local().Format("Mon Jan 2 15:04")))
	var days []string
	for day, id := range m.snapshot.Calendar {
		if id == entry.ID {
			days = append(days, day)
		}
	}
	if len(days) > 0 {
		caption += styles.SuccessText.Render(fmt.Sprintf("  ★ %d day(s)", len(days)))
	}

	// Half-block pixels are roughly square, so a square image needs twice as
	// many columns as rows.
	rows := min(height-2, width/2)
	if rows < 1 {
		return caption
	}
	lines, err := m.thumbnail(entry, rows*2, rows)
	if err != nil {
		return caption + "\n" + styles.DangerText.Render("unreadable image")
	}
	return caption + "\n\n" + strings.Join(lines, "\n")
}
