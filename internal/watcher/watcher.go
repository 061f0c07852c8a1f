// Package watcher monitors the journal root for day-file changes using
// OS-level notifications. It exists for appends the running process did not
// make itself (a second instance, a hand edit); in-process appends already
// reach the UI through the bus.
package watcher

import (
	"context"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher watches one directory and coalesces relevant events into kicks.
type Watcher struct {
	fsw *fsnotify.Watcher

	// Kicks receives a token whenever a day file changed. The channel has
	// capacity 1 and drops when full, so bursts collapse into one refresh.
	Kicks chan struct{}
}

// New creates a Watcher for the journal root directory.
func New(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{
		fsw:   fsw,
		Kicks: make(chan struct{}, 1),
	}, nil
}

// Start begins listening for file events. It blocks until the context is
// cancelled.
func (w *Watcher) Start(ctx context.Context) {
	defer w.fsw.Close()
	defer close(w.Kicks)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(ev.Name, ".jsonl") {
				continue
			}
			switch {
			case ev.Op&fsnotify.Write != 0,
				ev.Op&fsnotify.Create != 0,
				ev.Op&fsnotify.Remove != 0,
				ev.Op&fsnotify.Rename != 0:
				select {
				case w.Kicks <- struct{}{}:
				default:
					// A refresh is already pending.
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("journal watcher error")
		}
	}
}
