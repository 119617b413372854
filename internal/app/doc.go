// Package app is the composition root for pixday.
//
// # Overview
//
// Run wires configuration, the SQLite gallery, the palette file, the shared
// state store and the UI, then blocks in the Bubble Tea program until the
// user quits or the context is cancelled.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        config.toml plus -size override
//	       ├─────> prefs.Load()         theme, export size, gallery order
//	       ├─────> gallery.Open()       SQLite gallery + calendar
//	       ├─────> palette.Load()       palette.yaml, watched for edits
//	       ├─────> Refresher.Refresh()  initial store fill
//	       ├─────> Refresher.Start()    background reload loop
//	       └─────> ui.Run()             TUI (blocks)
//
// # Refreshing
//
// The Refresher copies the whole gallery into a state.Store. The UI reads
// snapshots from the store on its own tick and calls Refresh directly after
// each write, so its own changes show up at once. The background loop only
// picks up changes made by other processes sharing the database. Consecutive
// failures double the wait, up to two minutes; the store keeps the last good
// data and the header reports the failure.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid config file or unsupported -size
//   - Gallery database cannot be opened
//
// Recoverable errors (logged, startup continues):
//   - Unreadable palette file (built-in palette used)
//   - Palette watcher unavailable (no live reload)
//   - Refresh failures
//
// Logs go to pixday.log in the data directory; the terminal is owned by the UI.
package app
