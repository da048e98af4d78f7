package preset

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/curves"
)

// Watcher re-parses a preset file whenever it changes on disk.
//
// The containing directory is watched rather than the file itself, so
// editors that save by writing a temporary file and renaming it over the
// original are still noticed.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
}

// NewWatcher starts watching path. Events that happen after NewWatcher
// returns are delivered by Run.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("preset: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("preset: create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("preset: watch %s: %w", abs, err)
	}
	return &Watcher{path: abs, w: fw}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run calls fn with the freshly parsed preset after every write, create or
// rename of the watched file, until ctx is done or fn returns an error.
// Presets that fail to parse are logged and skipped; the previous state
// stays on screen. Run closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context, fn func(*Preset) error) error {
	defer func() { _ = w.w.Close() }()

	const changed = fsnotify.Write | fsnotify.Create | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&changed == 0 {
				continue
			}
			p, err := Load(w.path)
			if err != nil {
				curves.Logger().Warn("preset: reload failed", "path", w.path, "err", err)
				continue
			}
			curves.Logger().Info("preset: reloaded", "path", w.path, "shape", p.Shape)
			if err := fn(p); err != nil {
				return err
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			curves.Logger().Warn("preset: watch error", "path", w.path, "err", err)
		}
	}
}
