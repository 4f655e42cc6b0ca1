// Package watcher signals when the seed file changes on disk so the
// outline can reload live.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces editor write bursts into one reload signal.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a single file and emits a signal after its contents
// change, debounced so save bursts collapse into one event.
type Watcher struct {
	path     string
	debounce time.Duration
	fs       *fsnotify.Watcher
	events   chan struct{}
}

// New prepares a watcher for path. Watching starts when Run is called.
// The parent directory is watched rather than the file itself because
// editors commonly replace the file on save.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		fs:       fs,
		events:   make(chan struct{}, 1),
	}, nil
}

// Events delivers one signal per debounced change. The channel holds one
// pending signal; further changes while a signal is pending are folded
// into it.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Run processes filesystem events until ctx is cancelled or the
// underlying watcher fails. It always closes the watcher on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.events <- struct{}{}:
			default:
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", w.path, err)
		}
	}
}
