package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/daylist/pkg/glyph"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventItemsChanged indicates items of the given category were added,
	// edited, or removed.
	EventItemsChanged EventType = iota

	// EventInvalidated signals that the change could not be attributed to a
	// category and callers should reload everything.
	EventInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type     EventType
	Category glyph.Category
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if err := ensureDir(p.basePath); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				slog.Warn("store: watcher close", "error", err)
			}
		})
	}

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		// Days are nested directories, so new ones keep appearing.
		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; the next
				// refresh reloads the whole store anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Debug("store: watcher error", "error", err)
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						added, err := collectDirs(evt.Name)
						if err != nil {
							slog.Warn("store: enumerate new directory", "dir", evt.Name, "error", err)
						}
						for _, dir := range added {
							dir = filepath.Clean(dir)
							if _, found := watched[dir]; found {
								continue
							}
							if err := watcher.Add(dir); err != nil {
								slog.Warn("store: watch", "dir", dir, "error", err)
								continue
							}
							watched[dir] = struct{}{}
						}
						// Files may have landed before the watch was added.
						throttle.Enqueue(p.eventForPath(evt.Name), send)
						continue
					}
				}

				throttle.Enqueue(p.eventForPath(evt.Name), send)
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// eventForPath attributes a change under basePath to a category.
func (p *persistence) eventForPath(path string) Event {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return Event{Type: EventInvalidated}
	}
	c, ok := categoryFromKey(filepath.ToSlash(rel))
	if !ok {
		return Event{Type: EventInvalidated}
	}
	return Event{Type: EventItemsChanged, Category: c}
}

// eventThrottle coalesces rapid change notifications so consumers reload
// once per burst of filesystem activity instead of on every single write.
// Sends happen under mu, so nothing is sent once Stop returns.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[Event]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[Event]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.pending[ev] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = make(map[Event]struct{})
	t.timer = nil
	if t.stopped {
		return
	}

	if _, all := pending[Event{Type: EventInvalidated}]; all {
		send(Event{Type: EventInvalidated})
		return
	}
	for ev := range pending {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
