// Package app wires Skylog together and owns its lifecycle.
//
// # Startup sequence
//
// Run composes the pieces in dependency order:
//
//  1. config.Load — TOML config with defaults
//  2. logging.Setup — zerolog to a file, or disabled
//  3. prefs.Load — theme and last-used system
//  4. journal.Open — the per-day entry store
//  5. bus.NewInMemory — in-process append events
//  6. watcher.New — fsnotify kicks for external writes
//  7. StartPoller — background day re-reads into state.Store
//  8. ui.Run — blocks until quit or context cancellation
//
// # Live view contract
//
// An open view of a day must observe entries appended during the same run
// without the operator re-selecting the date. Three mechanisms cooperate:
//
//   - the UI's own append path re-reads the day synchronously;
//   - every successful append is published on the bus and forwarded to the
//     running Bubble Tea program;
//   - the poller re-reads the selected day every poll interval, and
//     immediately when the directory watcher reports a day-file change.
//
// Any one of these alone satisfies the contract; together they also cover
// appends made by a second process, best effort.
package app
