package watch

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce collapses bursts of events such as editor save sequences
const DefaultDebounce = 300 * time.Millisecond

// tickInterval is how often pending changes are checked against the debounce window
const tickInterval = 50 * time.Millisecond

// ErrNoFiles is returned when a watcher is created without file names
var ErrNoFiles = errors.New("no files to watch")

// Stats counts watcher activity
type Stats struct {
	Events    int
	Callbacks int
	Errors    int
	LastEvent time.Time
	LastPath  string
}

// Watcher reports changes to a fixed set of files inside one directory.
// The directory is watched rather than the files so that atomic replaces
// (write temp, rename) and late file creation are seen.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	names    map[string]struct{}
	debounce time.Duration
	onChange func()
	log      *logrus.Entry

	pending time.Time
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	stats   Stats
}

// New creates a watcher for the given file names under dir. onChange runs on
// the watcher goroutine once per debounced burst.
func New(dir string, names []string, debounce time.Duration, onChange func(), logger *logrus.Entry) (*Watcher, error) {
	if len(names) == 0 {
		return nil, ErrNoFiles
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[filepath.Base(n)] = struct{}{}
	}

	return &Watcher{
		watcher:  fw,
		dir:      dir,
		names:    set,
		debounce: debounce,
		onChange: onChange,
		log:      logger.WithField("component", "watch"),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Open creates and starts a watcher. The watcher is closed again when it
// cannot start.
func Open(ctx context.Context, dir string, names []string, debounce time.Duration, onChange func(), logger *logrus.Entry) (*Watcher, error) {
	w, err := New(dir, names, debounce, onChange, logger)
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return nil, err
	}
	return w, nil
}

// Start begins watching. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	w.log.Infof("Watching %s", w.dir)

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.log.WithError(err).Error("Failed to close watcher")
	}
	w.log.Debug("Watcher stopped")
}

// Stats returns a copy of the activity counters
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("Watcher error")
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if _, ok := w.names[filepath.Base(event.Name)]; !ok {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.log.Debugf("%s %s", event.Op, event.Name)

	w.mu.Lock()
	w.pending = time.Now()
	w.stats.Events++
	w.stats.LastEvent = w.pending
	w.stats.LastPath = event.Name
	w.mu.Unlock()
}

// flush fires onChange once the last event is older than the debounce window
func (w *Watcher) flush() {
	w.mu.Lock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.stats.Callbacks++
	w.mu.Unlock()

	if w.onChange != nil {
		w.onChange()
	}
}
