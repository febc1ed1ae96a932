package mcp

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// debounceInterval coalesces the bursts of write events editors emit on
// save into a single reload.
const debounceInterval = 200 * time.Millisecond

// WatchConfig watches the server's config file and reloads the registry
// when it changes. Blocks until ctx is cancelled. The parent directory is
// watched rather than the file itself so atomic save-and-rename (and the
// file being created after startup) is observed.
func (s *Server) WatchConfig(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(s.configPath)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	log.Debug("watching config", "path", s.configPath)

	var timer *time.Timer
	reloads := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.configPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceInterval, func() {
				select {
				case reloads <- struct{}{}:
				default:
				}
			})

		case <-reloads:
			s.reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("config watcher error", "err", err)
		}
	}
}
