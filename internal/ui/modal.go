package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pixday/internal/canvas"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// confirmAction names the operation a confirmation guards.
type confirmAction int

const (
	confirmClear confirmAction = iota
	confirmResize
	confirmDelete
	confirmBind
	confirmUnbind
)

type confirmedMsg struct {
	action confirmAction
	id     string
}

type confirmModal struct {
	prompt string
	action confirmAction
	id     string
}

func newConfirm(action confirmAction, id, prompt string) confirmModal {
	return confirmModal{prompt: prompt, action: action, id: id}
}

func (c confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(km, keys.Yes):
		done := confirmedMsg{action: c.action, id: c.id}
		return c, func() tea.Msg { return done }, true
	case key.Matches(km, keys.No), km.String() == "ctrl+c":
		return c, nil, true
	}
	return c, nil, false
}

func (c confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(c.prompt))
	b.WriteString("\n\n")
	b.WriteString(styles.WarningText.Render("y"))
	b.WriteString(styles.MutedText.Render(" yes   "))
	b.WriteString(styles.WarningText.Render("n"))
	b.WriteString(styles.MutedText.Render(" no"))
	return placeModal(theme, width, height, b.String(), 44)
}

type colorChosenMsg canvas.Color

// colorModal edits the active color as a hex string.
type colorModal struct {
	input textinput.Model
	err   string
}

func newColorModal(current canvas.Color) (colorModal, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = "#rrggbb"
	ti.CharLimit = 7
	ti.Width = 10
	ti.SetValue(current.Hex())
	ti.CursorEnd()
	cmd := ti.Focus()
	return colorModal{input: ti}, cmd
}

func (c colorModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, keys.Cancel), km.String() == "ctrl+c":
			return c, nil, true
		case key.Matches(km, keys.Confirm):
			col, err := canvas.ParseHex(c.input.Value())
			if err != nil {
				c.err = err.Error()
				return c, nil, false
			}
			return c, func() tea.Msg { return colorChosenMsg(col) }, true
		}
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	c.err = ""
	return c, cmd, false
}

func (c colorModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Active color"))
	b.WriteString("\n\n")
	b.WriteString(c.input.View())
	if col, err := canvas.ParseHex(c.input.Value()); err == nil {
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(col.Hex())).Render("    "))
	}
	b.WriteString("\n")
	if c.err != "" {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(c.err))
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("enter apply · esc cancel"))
	return placeModal(theme, width, height, b.String(), 40)
}

func placeModal(theme Theme, width, height int, content string, modalWidth int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(modalWidth).
		Render(content)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
