// Package watch recomposes the site configuration when fragment files change.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "git.home.luguber.info/inful/sitecompose/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecompose/internal/logfields"
)

// DefaultDebounce collapses bursts of editor writes into one recomposition.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc is called after a debounced change to any watched file. Errors are logged
// and watching continues.
type ChangeFunc func(ctx context.Context) error

// Watcher monitors fragment files. Their directories are watched rather than the files
// themselves so that editors which replace files by rename are still seen.
type Watcher struct {
	files    map[string]struct{}
	dirs     []string
	onChange ChangeFunc
	debounce time.Duration

	watcher    *fsnotify.Watcher
	reloadChan chan struct{}
	stopChan   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// New creates a watcher for the given fragment files.
func New(files []string, onChange ChangeFunc, opts ...Option) (*Watcher, error) {
	if len(files) == 0 {
		return nil, ferrors.ValidationError("watch requires at least one fragment file").Build()
	}
	if onChange == nil {
		return nil, ferrors.InternalError("watch requires a change handler").Build()
	}

	w := &Watcher{
		files:      make(map[string]struct{}, len(files)),
		onChange:   onChange,
		debounce:   DefaultDebounce,
		reloadChan: make(chan struct{}, 1),
		stopChan:   make(chan struct{}),
	}
	seenDirs := map[string]struct{}{}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "resolve fragment path").WithContext("path", f).Build()
		}
		w.files[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := seenDirs[dir]; !ok {
			seenDirs[dir] = struct{}{}
			w.dirs = append(w.dirs, dir)
		}
	}
	for _, opt := range opts {
		opt(w)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRuntime, "create file watcher").Build()
	}
	w.watcher = fw
	return w, nil
}

// Start begins monitoring. It returns once the directories are registered.
func (w *Watcher) Start(ctx context.Context) error {
	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "watch fragment directory").WithContext("path", dir).Build()
		}
	}
	slog.Info("Watching fragment files", logfields.Files(len(w.files)))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop ends monitoring and waits for the loops to exit. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if _, watched := w.files[filepath.Clean(event.Name)]; !watched {
				continue
			}
			switch {
			case event.Op.Has(fsnotify.Write), event.Op.Has(fsnotify.Create), event.Op.Has(fsnotify.Rename):
				slog.Debug("Fragment change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				w.trigger()
			case event.Op.Has(fsnotify.Remove):
				slog.Warn("Fragment file removed", logfields.Path(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Fragment watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	defer w.wg.Done()
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
		}
	}
	for {
		select {
		case <-ctx.Done():
			stopTimer()
			return
		case <-w.stopChan:
			stopTimer()
			return
		case <-w.reloadChan:
			stopTimer()
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			if err := w.onChange(ctx); err != nil {
				slog.Error("Recomposition failed", logfields.Error(err))
			}
		}
	}
}

// trigger requests a debounced recomposition.
func (w *Watcher) trigger() {
	select {
	case w.reloadChan <- struct{}{}:
	default:
	}
}
