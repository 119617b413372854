package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pixday/internal/canvas"
	"github.com/five82/pixday/internal/engine"
	"github.com/five82/pixday/internal/viewport"
)

// maxOfferedBrush is the largest brush reachable from the keyboard.
const maxOfferedBrush = 4

// handlePainterKey processes keyboard input for the painter tab.
func (m Model) handlePainterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Pen):
		m.engine.SelectTool(engine.Pen)
	case key.Matches(msg, m.keys.Eraser):
		m.engine.SelectTool(engine.Eraser)
	case key.Matches(msg, m.keys.Fill):
		m.engine.SelectTool(engine.Fill)
	case key.Matches(msg, m.keys.Eyedropper):
		m.engine.SelectTool(engine.Eyedropper)

	case key.Matches(msg, m.keys.BrushDown):
		m.engine.SetBrushSize(m.engine.BrushSize() - 1)
	case key.Matches(msg, m.keys.BrushUp):
		if m.engine.BrushSize() < maxOfferedBrush {
			m.engine.SetBrushSize(m.engine.BrushSize() + 1)
		}

	case key.Matches(msg, m.keys.Undo):
		if !m.engine.Undo() {
			m.setStatus("Nothing to undo")
		}
	case key.Matches(msg, m.keys.Clear):
		m.modal = newConfirm(confirmClear, "", "Clear the whole canvas?")
	case key.Matches(msg, m.keys.Save):
		return m, m.saveCmd()
	case key.Matches(msg, m.keys.GridSize):
		next := canvas.NextSize(m.engine.Size())
		m.modal = newConfirm(confirmResize, "",
			fmt.Sprintf("Switch to %s? The current drawing will be discarded.", sizeLabel(next)))

	case key.Matches(msg, m.keys.Fit):
		m.engine.FitToContainer()
	case key.Matches(msg, m.keys.ZoomIn):
		w, h := m.contentRect().units()
		m.engine.OnWheel(w/2, h/2, 1)
	case key.Matches(msg, m.keys.ZoomOut):
		w, h := m.contentRect().units()
		m.engine.OnWheel(w/2, h/2, -1)
	case key.Matches(msg, m.keys.PanUp):
		m.engine.Pan(0, -panStepY)
	case key.Matches(msg, m.keys.PanDown):
		m.engine.Pan(0, panStepY)
	case key.Matches(msg, m.keys.PanLeft):
		m.engine.Pan(-panStepX, 0)
	case key.Matches(msg, m.keys.PanRight):
		m.engine.Pan(panStepX, 0)

	case key.Matches(msg, m.keys.HexColor):
		modal, cmd := newColorModal(m.engine.ActiveColor())
		m.modal = modal
		return m, cmd
	case key.Matches(msg, m.keys.CopyColor):
		return m, m.copyCmd(m.engine.ActiveColor().Hex())
	case key.Matches(msg, m.keys.PrevPalette):
		if m.paletteIdx < 0 {
			m.selectPalette(m.palette.Len() - 1)
		} else {
			m.selectPalette(m.paletteIdx - 1)
		}
	case key.Matches(msg, m.keys.NextPalette):
		m.selectPalette(m.paletteIdx + 1)
	}
	return m, nil
}

// selectPalette makes palette entry i (wrapping) the active color.
func (m *Model) selectPalette(i int) {
	n := m.palette.Len()
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	m.paletteIdx = i
	m.engine.SetActiveColor(m.palette.At(i))
}

// handleMouse feeds pointer events to the engine. Alt turns a left drag into a pan.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.tab != TabPainter {
		return m, nil
	}
	area := m.contentRect()
	px, py := area.screenPoint(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if area.contains(msg.X, msg.Y) {
				m.engine.OnWheel(px, py, 1)
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if area.contains(msg.X, msg.Y) {
				m.engine.OnWheel(px, py, -1)
			}
			return m, nil
		}
		if !area.contains(msg.X, msg.Y) {
			if msg.Button == tea.MouseButtonLeft && msg.Y == headerRows-1 {
				if i, ok := m.paletteHit(msg.X); ok {
					m.selectPalette(i)
				}
			}
			return m, nil
		}
		out := m.engine.OnPointerDown(px, py, pointerButton(msg.Button), engine.Modifiers{Pan: msg.Alt})
		m.afterPointer(out)

	case tea.MouseActionMotion:
		// Plain hover reports motion too when the terminal tracks all motion.
		if !m.engine.Drawing() && !m.engine.View().Panning() {
			return m, nil
		}
		m.afterPointer(m.engine.OnPointerMove(px, py))

	case tea.MouseActionRelease:
		m.engine.OnPointerUp(px, py)
	}
	return m, nil
}

func (m *Model) afterPointer(out engine.Outcome) {
	if out.Picked {
		c := m.engine.ActiveColor()
		m.paletteIdx = m.palette.Index(c)
		m.setStatus("Picked " + c.Hex())
	}
}

func pointerButton(b tea.MouseButton) engine.Button {
	switch b {
	case tea.MouseButtonLeft:
		return engine.ButtonLeft
	case tea.MouseButtonMiddle:
		return engine.ButtonMiddle
	case tea.MouseButtonRight:
		return engine.ButtonRight
	}
	return engine.ButtonNone
}

// paletteHit maps a column of the tool bar to a palette index. Swatches start
// after the one-column bar padding and are two columns wide.
func (m Model) paletteHit(col int) (int, bool) {
	if col < 1 {
		return 0, false
	}
	i := (col - 1) / 2
	if i >= m.palette.Len() {
		return 0, false
	}
	return i, true
}

// cellSource is what the canvas renderer samples.
type cellSource interface {
	At(x, y int) (canvas.Cell, bool)
}

// canvasColor returns the background color for terminal cell (col, row).
func canvasColor(src cellSource, view viewport.Transform, area rect, col, row int, th Theme) string {
	px, py := area.screenPoint(col, row)
	gx, gy := view.ScreenToGrid(px, py)
	cell, ok := src.At(gx, gy)
	switch {
	case !ok:
		return th.CanvasBg
	case cell.IsEmpty():
		if (gx+gy)%2 == 0 {
			return th.CheckerA
		}
		return th.CheckerB
	default:
		return cell.Color.Hex()
	}
}

// renderCanvas samples the grid once per terminal cell and paints runs of
// equal color as one styled segment.
func (m Model) renderCanvas(area rect) string {
	if area.W <= 0 || area.H <= 0 {
		return ""
	}
	view := m.engine.View()
	lines := make([]string, area.H)
	var b strings.Builder
	for r := 0; r < area.H; r++ {
		b.Reset()
		row := area.Y + r
		runColor := ""
		runLen := 0
		for c := 0; c < area.W; c++ {
			color := canvasColor(m.engine, view, area, area.X+c, row, m.theme)
			if color == runColor {
				runLen++
				continue
			}
			writeRun(&b, runColor, runLen)
			runColor, runLen = color, 1
		}
		writeRun(&b, runColor, runLen)
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

func writeRun(b *strings.Builder, color string, n int) {
	if n == 0 {
		return
	}
	b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(color)).Render(strings.Repeat(" ", n)))
}

// renderToolBar shows the palette, active tool and view state.
func (m Model) renderToolBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)

	var b strings.Builder
	b.WriteString(styles.Text.Render(" "))
	for i := 0; i < m.palette.Len(); i++ {
		c := m.palette.At(i)
		mark := "  "
		if i == m.paletteIdx {
			mark = "◆◆"
		}
		b.WriteString(lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Foreground(lipgloss.Color(contrastText(c))).
			Render(mark))
	}

	active := m.engine.ActiveColor()
	sep := styles.Text.Render("  ")
	tool := m.engine.Tool()
	parts := []string{styles.AccentText.Bold(true).Render(tool.String())}
	if tool.Gesture() == engine.GestureDrag {
		parts = append(parts, styles.MutedText.Render("brush ")+styles.Text.Render(fmt.Sprintf("%d", m.engine.BrushSize())))
	}
	parts = append(parts,
		lipgloss.NewStyle().Background(lipgloss.Color(active.Hex())).Render("  ") +
			styles.Text.Render(" "+active.Hex()),
		styles.MutedText.Render(sizeLabel(m.engine.Size())),
		styles.MutedText.Render(fmt.Sprintf("zoom ×%.1f", m.engine.View().Scale)),
	)
	if m.engine.CanUndo() {
		parts = append(parts, styles.FaintText.Render(fmt.Sprintf("undo %d", m.engine.HistoryLen())))
	}
	b.WriteString(sep)
	b.WriteString(strings.Join(parts, sep))

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.SurfaceAlt)).
		Width(m.width).
		MaxWidth(m.width).
		Render(b.String())
}

func sizeLabel(n int) string {
	return fmt.Sprintf("%d×%d", n, n)
}

// contrastText picks black or white text for legibility on c.
func contrastText(c canvas.Color) string {
	lum := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if lum > 140 {
		return "#000000"
	}
	return "#ffffff"
}
