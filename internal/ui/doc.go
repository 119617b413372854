// Package ui provides the terminal user interface for pixday.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model with three tabs:
//
//   - Painter: the pixel canvas, driven by an engine.Engine
//   - Gallery: saved works, newest or oldest first, with a preview
//   - Calendar: one month, showing the work bound to each day
//
// # Package Structure
//
//   - app.go: Options, Model, message dispatch and Run
//   - painter.go: painter keys, mouse input and canvas rendering
//   - gallery.go, calendar.go: the other two tabs
//   - thumbnail.go: half-block rendering of stored PNGs
//   - header.go: title bar, tool bar and footer
//   - modal.go: confirmation and hex color dialogs
//   - commands.go: messages and background commands
//   - keys.go, help.go, theme.go, layout.go: bindings, help overlay, colors, sizes
//   - style_helpers.go, strings.go: background-safe segments and truncation
//
// # Canvas Geometry
//
// The canvas area is measured in screen units one row high and two columns
// wide. A mouse event at terminal cell (col, row) maps to the centre of that
// cell in units, which the engine's view transform turns into a grid cell.
// Rendering runs the same mapping for every terminal cell, so what is drawn
// under the pointer is exactly what a click there edits. Empty cells show a
// checker pattern; the area outside the grid uses the theme's canvas color.
//
// # Data Flow
//
// Writes to the gallery (save, delete, calendar binding) run as tea.Cmds.
// Each one refreshes the shared state.Store before reporting back, and a
// periodic tick also pulls the latest snapshot, so the background refresher
// and the UI stay in step without the UI touching the database while
// rendering.
//
// # Theme System
//
// Two themes are available, "dark" and "light". T toggles between them and
// the choice is saved to the preferences file together with the gallery sort
// order.
package ui
