// Package journal implements the per-day entry store behind Skylog.
//
// # Overview
//
// Entries are structured log records (timestamp, system, status, message)
// grouped into one collection per calendar date. Each collection is a flat
// JSONL file named YYYY-MM-DD.jsonl under a single root directory:
//
//	logs/
//	├── 2024-01-01.jsonl
//	├── 2024-01-02.jsonl
//	└── ...
//
// A day file holds one self-contained JSON record per line, in append order.
// Entries are immutable: there is no update or delete, only Append, ReadDay
// and Dates.
//
// # Record format
//
// New records are written as:
//
//	{"timestamp":"2024-01-02T09:15:00.123+03:00","system":"Navigation","status":"warning","message":"..."}
//
// The read path additionally accepts records produced by the original panel,
// which stored a bare wall-clock "time" plus a display-label "severity"
// (Normal/Alert/Critical). Those map onto the recognized severities and the
// file's own date.
//
// # Failure policy
//
// Append validates the severity before touching the file, so an invalid
// status never leaves a partial record. ReadDay treats a malformed line as
// recoverable: it is skipped, counted in DayLog.Skipped, and logged, so one
// corrupt line cannot hide an otherwise valid day. I/O failures are wrapped
// and surfaced; each day file is independent, so corruption never crosses
// dates.
package journal
