package inkwell

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces editor save bursts into a single rebuild.
const watchDebounce = 250 * time.Millisecond

// watch rebuilds the site whenever the content or static trees change.
// It returns when ctx is canceled.
func (s *Site) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("inkwell: watch: %w", err)
	}
	defer w.Close()

	for _, root := range []string{s.Config.ContentDir, s.Config.StaticDir} {
		if err := addRecursive(w, root); err != nil {
			return fmt.Errorf("inkwell: watch %s: %w", root, err)
		}
	}

	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories need their own watches.
			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = addRecursive(w, ev.Name)
				}
			}
			s.log.Debug("change detected", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(watchDebounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watch error", "error", err)
		case <-timer.C:
			if err := s.Build(); err != nil {
				s.log.Error("rebuild failed", "error", err)
			}
		}
	}
}

// addRecursive watches root and every directory below it. A missing root is
// skipped, so a site without a static dir still previews.
func addRecursive(w *fsnotify.Watcher, root string) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
