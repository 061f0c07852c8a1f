// Package config loads Skylog's TOML configuration.
//
// The file lives at ~/.config/skylog/config.toml and every field is
// optional; a missing file is not an error and yields full defaults. A
// minimal config looks like:
//
//	journal_dir = "~/flightlogs"
//	poll_seconds = 2
//	systems = ["Navigation", "Radar", "Ground Ops"]
//	debug = true
//	debug_log = "~/.local/state/skylog/skylog.log"
//
// journal_dir is the root of the per-day entry files. systems feeds the
// entry form's subsystem selector. Paths accept a leading ~ which is
// expanded to the user's home directory.
package config
