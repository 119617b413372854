// Package history keeps a bounded, linear undo stack of grid snapshots.
//
// Pushing after an undo discards everything beyond the cursor. Redo is not
// offered: the cursor only moves backwards through Undo.
package history

import "github.com/five82/pixday/internal/canvas"

// MaxEntries bounds the number of snapshots retained.
const MaxEntries = 20

// Stack is a snapshot stack with a cursor at the newest entry not yet undone.
// The zero value is an empty stack holding up to MaxEntries snapshots.
type Stack struct {
	entries []canvas.Snapshot
	cursor  int
	limit   int
	init    bool
}

// New returns an empty stack bounded by limit; limit <= 0 uses MaxEntries.
func New(limit int) *Stack {
	s := &Stack{}
	s.setup(limit)
	return s
}

func (s *Stack) setup(limit int) {
	if s.init {
		return
	}
	if limit <= 0 {
		limit = MaxEntries
	}
	s.limit = limit
	s.cursor = -1
	s.init = true
}

// Push records a deep copy of g as the newest entry.
func (s *Stack) Push(g *canvas.Grid) {
	s.setup(0)
	s.entries = s.entries[:s.cursor+1]
	s.entries = append(s.entries, g.Snapshot())
	if len(s.entries) > s.limit {
		drop := len(s.entries) - s.limit
		clear(s.entries[:drop])
		s.entries = s.entries[drop:]
	}
	s.cursor = len(s.entries) - 1
}

// Undo restores g from the entry at the cursor and steps the cursor back.
// It returns false, leaving g untouched, when nothing is left to undo or the
// entry belongs to a grid of another size.
func (s *Stack) Undo(g *canvas.Grid) bool {
	s.setup(0)
	if s.cursor < 0 {
		return false
	}
	if !g.Restore(s.entries[s.cursor]) {
		return false
	}
	s.cursor--
	return true
}

// CanUndo reports whether Undo would succeed for a grid of matching size.
func (s *Stack) CanUndo() bool {
	s.setup(0)
	return s.cursor >= 0
}

// Len returns the number of retained entries, including undone ones.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Cursor returns the index of the next entry Undo restores, or -1.
func (s *Stack) Cursor() int {
	s.setup(0)
	return s.cursor
}

// Reset drops every entry.
func (s *Stack) Reset() {
	s.setup(0)
	clear(s.entries)
	s.entries = s.entries[:0]
	s.cursor = -1
}
