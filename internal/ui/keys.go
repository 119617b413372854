package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	Painter    key.Binding
	Gallery    key.Binding
	Calendar   key.Binding

	// Painter tools
	Pen        key.Binding
	Eraser     key.Binding
	Fill       key.Binding
	Eyedropper key.Binding
	BrushDown  key.Binding
	BrushUp    key.Binding

	// Painter document
	Undo     key.Binding
	Clear    key.Binding
	Save     key.Binding
	GridSize key.Binding

	// Painter view
	Fit      key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	PanUp    key.Binding
	PanDown  key.Binding
	PanLeft  key.Binding
	PanRight key.Binding

	// Painter color
	HexColor    key.Binding
	CopyColor   key.Binding
	PrevPalette key.Binding
	NextPalette key.Binding

	// Gallery
	Up         key.Binding
	Down       key.Binding
	ToggleSort key.Binding
	ExportSize key.Binding
	BindToday  key.Binding
	Export     key.Binding
	Delete     key.Binding

	// Calendar
	PrevMonth key.Binding
	NextMonth key.Binding

	// Modals
	Confirm key.Binding
	Cancel  key.Binding
	Yes     key.Binding
	No      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Toggle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next tab"),
		),
		Painter: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Painter"),
		),
		Gallery: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Gallery"),
		),
		Calendar: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Calendar"),
		),

		// Painter tools
		Pen: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Pen"),
		),
		Eraser: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Eraser"),
		),
		Fill: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Fill"),
		),
		Eyedropper: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Eyedropper"),
		),
		BrushDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Smaller brush"),
		),
		BrushUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Larger brush"),
		),

		// Painter document
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "Undo"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Clear canvas"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Save to gallery"),
		),
		GridSize: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Cycle grid size"),
		),

		// Painter view
		Fit: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "Fit to screen"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Zoom out"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Pan down"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Pan right"),
		),

		// Painter color
		HexColor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Enter hex color"),
		),
		CopyColor: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy color"),
		),
		PrevPalette: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",", "Previous palette color"),
		),
		NextPalette: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "Next palette color"),
		),

		// Gallery
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		ToggleSort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Toggle sort"),
		),
		ExportSize: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "Export size"),
		),
		BindToday: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Set/unset today"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Export PNG"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete"),
		),

		// Calendar
		PrevMonth: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "Previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "Next month"),
		),

		// Modals
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "Yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "No"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Painter, k.Gallery, k.Calendar, k.Tab},
		{k.Pen, k.Eraser, k.Fill, k.Eyedropper, k.BrushDown, k.BrushUp},
		{k.Undo, k.Clear, k.Save, k.GridSize},
		{k.Fit, k.ZoomIn, k.ZoomOut, k.PanUp, k.PanDown, k.PanLeft, k.PanRight},
		{k.HexColor, k.CopyColor, k.PrevPalette, k.NextPalette},
		{k.Up, k.Down, k.ToggleSort, k.ExportSize, k.BindToday, k.Export, k.Delete},
		{k.PrevMonth, k.NextMonth},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// tabKeys adapts the short help to the active tab.
type tabKeys struct {
	keyMap
	tab Tab
}

func (k tabKeys) ShortHelp() []key.Binding {
	switch k.tab {
	case TabPainter:
		return []key.Binding{k.Save, k.Undo, k.HexColor, k.Fit, k.Help, k.Quit}
	case TabGallery:
		return []key.Binding{k.Down, k.BindToday, k.Export, k.Delete, k.ToggleSort, k.ExportSize, k.Help, k.Quit}
	case TabCalendar:
		return []key.Binding{k.PrevMonth, k.NextMonth, k.Help, k.Quit}
	}
	return k.keyMap.ShortHelp()
}
