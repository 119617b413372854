package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pixday/internal/gallery"
)

var weekdayLabels = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// monthGrid lays out a month in Sunday-first weeks. Zero marks a padding
// day outside the month.
func monthGrid(year int, month time.Month) [][]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	var weeks [][]int
	week := make([]int, 7)
	col := int(first.Weekday())
	for d := 1; d <= days; d++ {
		week[col] = d
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// handleCalendarKey processes keyboard input for the calendar tab.
func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevMonth):
		m.month = m.month.AddDate(0, -1, 0)
	case key.Matches(msg, m.keys.NextMonth):
		m.month = m.month.AddDate(0, 1, 0)
	}
	return m, nil
}

// renderCalendar renders the month with a thumbnail for every bound day, or
// a star per bound day when the terminal is too small for thumbnails.
func (m Model) renderCalendar(area rect) string {
	styles := m.theme.Styles()
	year, month := m.month.Year(), m.month.Month()
	weeks := monthGrid(year, month)

	cellW := 4
	thumbs := area.W >= 7*calendarCellCols && area.H >= 3+len(weeks)*calendarCellRows
	if thumbs {
		cellW = calendarCellCols
	}

	var b strings.Builder
	title := fmt.Sprintf("‹ %s %d ›", month, year)
	b.WriteString(lipgloss.PlaceHorizontal(7*cellW, lipgloss.Center, styles.AccentText.Bold(true).Render(title)))
	b.WriteString("\n\n")
	for _, label := range weekdayLabels {
		b.WriteString(styles.MutedText.Width(cellW).Render(label))
	}

	today := m.todayKey()
	for _, week := range weeks {
		b.WriteString("\n")
		if thumbs {
			b.WriteString(m.renderThumbWeek(year, month, week, today))
		} else {
			b.WriteString(m.renderCompactWeek(year, month, week, today, cellW))
		}
	}

	return lipgloss.NewStyle().Width(area.W).Height(area.H).MaxHeight(area.H).Padding(0, 1).Render(b.String())
}

func (m Model) dayEntry(dateKey string) (gallery.Entry, bool) {
	id, ok := m.snapshot.Calendar[dateKey]
	if !ok {
		return gallery.Entry{}, false
	}
	return m.snapshot.Entry(id)
}

func (m Model) dayStyle(dateKey, today string) lipgloss.Style {
	styles := m.theme.Styles()
	if dateKey == today {
		return styles.TabActive.Padding(0)
	}
	return styles.Text
}

func (m Model) renderCompactWeek(year int, month time.Month, week []int, today string, cellW int) string {
	styles := m.theme.Styles()
	var b strings.Builder
	for _, d := range week {
		if d == 0 {
			b.WriteString(strings.Repeat(" ", cellW))
			continue
		}
		k := gallery.DateKey(time.Date(year, month, d, 0, 0, 0, 0, time.Local))
		text := m.dayStyle(k, today).Render(fmt.Sprintf("%2d", d))
		if _, ok := m.dayEntry(k); ok {
			text += styles.SuccessText.Render("★")
		}
		b.WriteString(lipgloss.NewStyle().Width(cellW).Render(text))
	}
	return b.String()
}

func (m Model) renderThumbWeek(year int, month time.Month, week []int, today string) string {
	cells := make([]string, len(week))
	for i, d := range week {
		lines := make([]string, calendarCellRows)
		if d != 0 {
			k := gallery.DateKey(time.Date(year, month, d, 0, 0, 0, 0, time.Local))
			lines[0] = m.dayStyle(k, today).Render(fmt.Sprintf("%2d", d))
			if e, ok := m.dayEntry(k); ok {
				if thumb, err := m.thumbnail(e, calendarThumb, calendarThumb/2); err == nil {
					copy(lines[1:], thumb)
				}
			}
		}
		cells[i] = lipgloss.NewStyle().
			Width(calendarCellCols).
			Height(calendarCellRows).
			Render(strings.Join(lines, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
