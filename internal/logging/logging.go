// Package logging configures Skylog's zerolog diagnostics.
//
// The TUI owns the terminal, so diagnostics never go to stderr: with debug
// enabled they are appended to a file, otherwise logging is disabled
// entirely. Packages log through the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup routes the global logger. The returned func flushes and closes the
// sink and is safe to call once on shutdown.
func Setup(path string, debug bool) (func(), error) {
	if !debug {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		log.Logger = zerolog.New(io.Discard)
		return func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(file).With().Timestamp().Logger()
	return func() { _ = file.Close() }, nil
}
