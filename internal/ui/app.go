// Package ui provides the Bubble Tea terminal interface for pixday.
package ui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/pixday/internal/canvas"
	"github.com/five82/pixday/internal/config"
	"github.com/five82/pixday/internal/engine"
	"github.com/five82/pixday/internal/gallery"
	"github.com/five82/pixday/internal/history"
	"github.com/five82/pixday/internal/palette"
	"github.com/five82/pixday/internal/prefs"
	"github.com/five82/pixday/internal/state"
)

// Tab is one of the top-level screens.
type Tab int

const (
	TabPainter Tab = iota
	TabGallery
	TabCalendar
)

var tabTitles = []string{"Painter", "Gallery", "Calendar"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabTitles) {
		return "unknown"
	}
	return tabTitles[t]
}

// Gallery is the persistence the UI writes to.
type Gallery interface {
	Add(ctx context.Context, snap canvas.Snapshot, now time.Time) (gallery.Entry, error)
	Delete(ctx context.Context, id string) error
	SetDay(ctx context.Context, dateKey, id string) error
	UnsetDay(ctx context.Context, dateKey string) error
}

// Refresher reloads the shared state.Store after a write.
type Refresher interface {
	Refresh(ctx context.Context)
}

// Options configures the UI.
type Options struct {
	Context       context.Context
	Store         *state.Store
	Gallery       Gallery
	Refresher     Refresher
	Exporter      gallery.Exporter
	Config        *config.Config
	Palette       palette.Palette
	PaletteEvents <-chan string
	Prefs         prefs.Prefs
	PrefsPath     string
	PollTick      time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx           context.Context
	store         *state.Store
	gallery       Gallery
	refresher     Refresher
	exporter      gallery.Exporter
	prefs         prefs.Prefs
	prefsPath     string
	pollTick      time.Duration
	paletteEvents <-chan string
	now           func() time.Time
	copyText      func(string) error

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	tab      Tab
	width    int
	height   int
	ready    bool
	showHelp bool
	modal    Modal

	// Painter state
	engine     *engine.Engine
	palette    palette.Palette
	paletteIdx int // -1 when the active color is not in the palette

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Gallery state
	gallerySel int
	thumbs     map[thumbKey][]string

	// Calendar state
	month time.Time

	status statusLine
}

type statusLine struct {
	text  string
	isErr bool
	at    time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	userPrefs := opts.Prefs
	if userPrefs.Theme == "" {
		userPrefs = prefs.Defaults()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	pal := opts.Palette
	if pal.Len() == 0 {
		pal = palette.Default()
	}

	exporter := opts.Exporter
	if exporter.Dir == "" {
		exporter = gallery.Exporter{Dir: cfg.ExportDir, UpscaleSize: cfg.UpscaleSize}
	}

	eng := engine.New(engine.Options{
		Size:         cfg.GridSize,
		BrushSize:    cfg.BrushSize,
		Color:        canvas.Black,
		HistoryLimit: history.MaxEntries,
		FitPadding:   cfg.FitPadding,
	})

	now := time.Now()
	h := help.New()
	h.ShortSeparator = "  "

	return Model{
		ctx:           ctx,
		store:         opts.Store,
		gallery:       opts.Gallery,
		refresher:     opts.Refresher,
		exporter:      exporter,
		prefs:         userPrefs,
		prefsPath:     prefsPath,
		pollTick:      pollTick,
		paletteEvents: opts.PaletteEvents,
		now:           time.Now,
		copyText:      clipboard.WriteAll,
		keys:          DefaultKeyMap(),
		help:          h,
		theme:         GetTheme(userPrefs.Theme),
		tab:           TabPainter,
		engine:        eng,
		palette:       pal,
		paletteIdx:    pal.Index(eng.ActiveColor()),
		thumbs:        make(map[thumbKey][]string),
		month:         time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.paletteEvents != nil {
		cmds = append(cmds, waitPaletteCmd(m.paletteEvents))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.modal != nil || m.showHelp {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		w, h := m.contentRect().units()
		m.engine.SetContainer(w, h)
		m.engine.FitToContainer()
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case galleryChangedMsg:
		if msg.err != nil {
			m.setError(msg.verb+" failed: "+msg.err.Error())
			return m, nil
		}
		if msg.hasSnapshot {
			m.applySnapshot(msg.snapshot)
		}
		m.setStatus(msg.done)
		return m, nil

	case statusMsg:
		if msg.isErr {
			m.setError(msg.text)
		} else {
			m.setStatus(msg.text)
		}
		return m, nil

	case confirmedMsg:
		return m.handleConfirmed(msg)

	case colorChosenMsg:
		m.engine.SetActiveColor(canvas.Color(msg))
		m.paletteIdx = m.palette.Index(canvas.Color(msg))
		m.setStatus("Color " + canvas.Color(msg).Hex())
		return m, nil

	case paletteChangedMsg:
		return m, tea.Batch(loadPaletteCmd(string(msg)), waitPaletteCmd(m.paletteEvents))

	case paletteLoadedMsg:
		if msg.err != nil {
			m.setError("palette: " + msg.err.Error())
			return m, nil
		}
		m.palette = msg.palette
		m.paletteIdx = m.palette.Index(m.engine.ActiveColor())
		m.setStatus("Palette reloaded: " + msg.palette.Name)
		return m, nil
	}

	// Let the open modal see everything else (cursor blink, etc.).
	if m.modal != nil {
		next, cmd, done := m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		next, cmd, done := m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		return m, m.savePrefsCmd()

	case key.Matches(msg, m.keys.Tab):
		m.tab = (m.tab + 1) % Tab(len(tabTitles))
		return m, nil

	case key.Matches(msg, m.keys.Painter):
		m.tab = TabPainter
		return m, nil

	case key.Matches(msg, m.keys.Gallery):
		m.tab = TabGallery
		return m, nil

	case key.Matches(msg, m.keys.Calendar):
		m.tab = TabCalendar
		return m, nil
	}

	switch m.tab {
	case TabPainter:
		return m.handlePainterKey(msg)
	case TabGallery:
		return m.handleGalleryKey(msg)
	case TabCalendar:
		return m.handleCalendarKey(msg)
	}

	return m, nil
}

// handleConfirmed runs an operation the user agreed to in a confirm modal.
func (m Model) handleConfirmed(msg confirmedMsg) (tea.Model, tea.Cmd) {
	switch msg.action {
	case confirmClear:
		m.engine.Clear()
		m.setStatus("Canvas cleared")
	case confirmResize:
		next := canvas.NextSize(m.engine.Size())
		if err := m.engine.Resize(next); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.setStatus(sizeLabel(next) + " canvas")
	case confirmDelete:
		id := msg.id
		return m, m.mutateCmd("delete", "Deleted", func(ctx context.Context, g Gallery) error {
			return g.Delete(ctx, id)
		})
	case confirmBind:
		id, day := msg.id, gallery.DateKey(m.now())
		return m, m.mutateCmd("set today", "Set as today's picture", func(ctx context.Context, g Gallery) error {
			return g.SetDay(ctx, day, id)
		})
	case confirmUnbind:
		day := gallery.DateKey(m.now())
		return m, m.mutateCmd("unset today", "Removed from today's calendar", func(ctx context.Context, g Gallery) error {
			return g.UnsetDay(ctx, day)
		})
	}
	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if m.status.text != "" && t.Sub(m.status.at) >= StatusTimeout {
		m.status = statusLine{}
	}

	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.lastUpdated = m.now()

	if n := len(snap.Entries); m.gallerySel >= n {
		m.gallerySel = max(0, n-1)
	}

	live := make(map[string]struct{}, len(snap.Entries))
	for _, e := range snap.Entries {
		live[e.ID] = struct{}{}
	}
	for k := range m.thumbs {
		if _, ok := live[k.id]; !ok {
			delete(m.thumbs, k)
		}
	}
}

func (m *Model) setStatus(text string) {
	m.status = statusLine{text: text, at: m.now()}
}

func (m *Model) setError(text string) {
	m.status = statusLine{text: text, isErr: true, at: m.now()}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	area := m.contentRect()

	var content string
	switch m.tab {
	case TabPainter:
		content = m.renderCanvas(area)
	case TabGallery:
		content = m.renderGallery(area)
	case TabCalendar:
		content = m.renderCalendar(area)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderSubBar(),
		content,
		m.renderFooter(),
	)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	teaOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if opts.Context != nil {
		teaOpts = append(teaOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, teaOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
