// Package state provides thread-safe state sharing for Skylog.
//
// # Overview
//
// The Store is the coordination point where background journal reads meet
// UI rendering. The poller (and the append path) write snapshots; the
// Bubble Tea model reads them on its tick. The selected day lives here too,
// so the poller always knows which collection to re-read after the operator
// picks a different date.
//
//	Producer (poller):              Consumer (UI):
//	┌──────────────────┐           ┌──────────────────┐
//	│ journal.ReadDay()│           │                  │
//	│ journal.Dates()  │           │                  │
//	│      ↓           │           │                  │
//	│ store.Update()   │──────────→│ store.Snapshot() │
//	│      ↓           │  (mutex)  │      ↓           │
//	│  repeat...       │           │  render views    │
//	└──────────────────┘           └──────────────────┘
//
// Snapshots are returned by value with defensive copies, so the UI can hold
// one across a render without racing the next refresh. On a failed read the
// previous data is kept and only the error and failure counter change; the
// operator keeps seeing the last good day while the header shows the
// problem.
package state
