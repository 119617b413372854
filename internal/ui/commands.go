package ui

import (
	"context"
	"errors"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pixday/internal/gallery"
	"github.com/five82/pixday/internal/palette"
	"github.com/five82/pixday/internal/prefs"
	"github.com/five82/pixday/internal/state"
)

var errGalleryUnavailable = errors.New("gallery unavailable")

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type statusMsg struct {
	text  string
	isErr bool
}

type galleryChangedMsg struct {
	verb        string // what was attempted, for errors
	done        string // status text on success
	err         error
	snapshot    state.Snapshot
	hasSnapshot bool
}

type paletteChangedMsg string

type paletteLoadedMsg struct {
	palette palette.Palette
	err     error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// mutateCmd runs op against the gallery, then refreshes the shared store so
// the result is visible immediately.
func (m Model) mutateCmd(verb, done string, op func(ctx context.Context, g Gallery) error) tea.Cmd {
	parent, g, refresher, store := m.ctx, m.gallery, m.refresher, m.store
	return func() tea.Msg {
		if g == nil {
			return galleryChangedMsg{verb: verb, err: errGalleryUnavailable}
		}
		ctx, cancel := context.WithTimeout(parent, OpTimeout)
		defer cancel()

		if err := op(ctx, g); err != nil {
			log.Printf("%s failed: %v", verb, err)
			return galleryChangedMsg{verb: verb, err: err}
		}
		msg := galleryChangedMsg{verb: verb, done: done}
		if refresher != nil {
			refresher.Refresh(ctx)
		}
		if store != nil {
			msg.snapshot = store.Snapshot()
			msg.hasSnapshot = true
		}
		return msg
	}
}

func (m Model) saveCmd() tea.Cmd {
	snap := m.engine.ExportSnapshot()
	now := m.now()
	return m.mutateCmd("save", "Saved to gallery", func(ctx context.Context, g Gallery) error {
		_, err := g.Add(ctx, snap, now)
		return err
	})
}

func (m Model) exportCmd(entry gallery.Entry) tea.Cmd {
	exporter := m.exporter
	size := gallery.ExportSize(m.prefs.ExportSize)
	now := m.now()
	return func() tea.Msg {
		path, err := exporter.Export(entry, size, now)
		if err != nil {
			log.Printf("export failed: %v", err)
			return statusMsg{text: "export failed: " + err.Error(), isErr: true}
		}
		return statusMsg{text: "Exported " + path}
	}
}

func (m Model) copyCmd(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		if copyText == nil {
			return statusMsg{text: "clipboard unavailable", isErr: true}
		}
		if err := copyText(text); err != nil {
			return statusMsg{text: "clipboard: " + err.Error(), isErr: true}
		}
		return statusMsg{text: "Copied " + text}
	}
}

func (m Model) savePrefsCmd() tea.Cmd {
	path, p := m.prefsPath, m.prefs
	return func() tea.Msg {
		if err := prefs.Save(path, p); err != nil {
			log.Printf("save prefs: %v", err)
			return statusMsg{text: "could not save preferences", isErr: true}
		}
		return nil
	}
}

func waitPaletteCmd(events <-chan string) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		path, ok := <-events
		if !ok {
			return nil
		}
		return paletteChangedMsg(path)
	}
}

func loadPaletteCmd(path string) tea.Cmd {
	return func() tea.Msg {
		p, err := palette.Load(path)
		return paletteLoadedMsg{palette: p, err: err}
	}
}
