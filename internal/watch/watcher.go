// Package watch re-checks files when the filesystem reports changes,
// debouncing event bursts into single batches.
package watch

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler receives the batch of paths that changed during one quiet
// period.
type Handler func(paths []string)

// Watcher wraps fsnotify with debounced batch delivery. Write and create
// events accumulate until the debounce period elapses without further
// events, then the handler runs once with the sorted batch.
type Watcher struct {
	fsw       *fsnotify.Watcher
	debouncer *Debouncer
	handler   Handler

	mu      sync.Mutex
	pending map[string]struct{}
}

// New creates a watcher that delivers batches to handler after debounce
// of quiet time.
func New(debounce time.Duration, handler Handler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsw:       fsw,
		debouncer: NewDebouncer(debounce),
		handler:   handler,
		pending:   make(map[string]struct{}),
	}, nil
}

// Add registers a file or directory with the underlying watcher.
func (w *Watcher) Add(path string) error {
	return w.fsw.Add(path)
}

// Run processes events until ctx is cancelled or the event stream closes.
// Any pending batch is flushed before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.debouncer.Flush()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending[event.Name] = struct{}{}
			w.mu.Unlock()
			w.debouncer.Trigger(w.flush)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

// Close stops the underlying watcher and cancels any pending batch.
func (w *Watcher) Close() error {
	w.debouncer.Cancel()
	return w.fsw.Close()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)
	w.handler(paths)
}
