// Package watch re-runs generation when schema documents change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrNoRoots is returned when there is no directory to watch.
var ErrNoRoots = errors.New("no directories to watch")

// Watch observes roots recursively and calls fn once the tree has been quiet
// for debounce after a change. It blocks until ctx is cancelled.
func Watch(ctx context.Context, roots []string, debounce time.Duration, logger *slog.Logger, fn func(context.Context)) error {
	if len(roots) == 0 {
		return ErrNoRoots
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, root := range roots {
		if err := addTree(watcher, root); err != nil {
			return err
		}
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !relevant(event) {
				continue
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, event.Name); err != nil {
						logger.Warn("watch: cannot follow new directory", "path", event.Name, "error", err)
					}
				}
			}

			logger.Debug("watch: change", "path", event.Name, "op", event.Op.String())

			if timer != nil {
				timer.Stop()
			}

			timer = time.NewTimer(debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			fn(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Error("watch: error", "error", err)
		}
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

// addTree watches root and every directory below it.
func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if err := w.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}

		return nil
	})
}
