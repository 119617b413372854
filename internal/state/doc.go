// Package state provides thread-safe state management for pixday's gallery view.
//
// # Overview
//
// The gallery and calendar live in SQLite. A background refresher in the app
// package reloads them periodically and after every save, delete or calendar
// change, and publishes the result here. The UI reads snapshots on its own
// schedule and never touches the database while rendering.
//
//	Producer (refresher):          Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ gallery.Load() │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  wait / kick   │            │  render views   │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
//	// Success case: replace entries and calendar
//	store.Update(entries, days, nil)
//
//	// Error case: keep old data, record error
//	store.Update(nil, nil, err)
//
// ConsecutiveFailures counts failed refreshes since the last success; the
// refresher backs off on it and the UI marks the gallery as degraded once it
// reaches two.
//
// # Copying
//
// Update and Snapshot copy the entry slice and the calendar map. PNG payloads
// inside entries are shared because nothing mutates them after storage.
//
// The zero Store is ready to use.
package state
