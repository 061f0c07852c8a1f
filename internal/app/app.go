package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mkutlu/skylog/internal/bus"
	"github.com/mkutlu/skylog/internal/config"
	"github.com/mkutlu/skylog/internal/journal"
	"github.com/mkutlu/skylog/internal/logging"
	"github.com/mkutlu/skylog/internal/prefs"
	"github.com/mkutlu/skylog/internal/state"
	"github.com/mkutlu/skylog/internal/ui"
	"github.com/mkutlu/skylog/internal/watcher"
)

// Options configure the Skylog application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/skylog/prefs.toml
	JournalDir string // overrides the configured journal directory
	PollEvery  int    // seconds; zero uses the configured cadence
}

// Run boots the Skylog TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := logging.Setup(cfg.DebugLogPath, cfg.Debug)
	if err != nil {
		return fmt.Errorf("init diagnostics: %w", err)
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	journalDir := cfg.JournalDir
	if opts.JournalDir != "" {
		journalDir = opts.JournalDir
	}
	store, err := journal.Open(journalDir)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}

	evbus, err := bus.NewInMemory()
	if err != nil {
		return fmt.Errorf("init event bus: %w", err)
	}

	snapshots := state.NewStore(time.Now())

	interval := cfg.PollInterval()
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Out-of-process appends only; best effort.
	var kicks <-chan struct{}
	if w, err := watcher.New(journalDir); err != nil {
		log.Warn().Err(err).Str("dir", journalDir).Msg("journal watcher unavailable")
	} else {
		go w.Start(ctx)
		kicks = w.Kicks
	}

	StartPoller(ctx, store, snapshots, interval, kicks)

	// Do initial refresh to populate the snapshot before the UI starts.
	refresh(store, snapshots)

	uiOpts := ui.Options{
		Context:   ctx,
		Journal:   store,
		Store:     snapshots,
		Bus:       evbus,
		Systems:   cfg.Systems,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		System:    userPrefs.LastSystem,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
