package site

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const DefaultDebounceDelay = 100 * time.Millisecond

// ContentWatcher reloads a ContentCache when its file changes on disk.
type ContentWatcher struct {
	cache    *ContentCache
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

func NewContentWatcher(cache *ContentCache, debounce time.Duration) (*ContentWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounceDelay
	}

	return &ContentWatcher{
		cache:    cache,
		watcher:  fsw,
		debounce: debounce,
	}, nil
}

// Start watches the directory holding the content file, since editors
// often replace the file rather than write to it.
func (w *ContentWatcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.cache.contentFile)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	go w.processEvents(ctx)

	slog.Info("Content watcher started",
		"file", w.cache.contentFile,
		"debounce", w.debounce)

	return nil
}

func (w *ContentWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *ContentWatcher) processEvents(ctx context.Context) {
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	target := filepath.Clean(w.cache.contentFile)
	pending := false

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = true
				slog.Debug("Content change detected", "file", event.Name, "op", event.Op.String())
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", "error", err)

		case <-ticker.C:
			if pending {
				pending = false
				w.reload()
			}
		}
	}
}

func (w *ContentWatcher) reload() {
	content, err := w.cache.LoadContent()
	if err != nil {
		slog.Error("Content reload failed, keeping previous content",
			"file", w.cache.contentFile,
			"error", err)
		return
	}

	slog.Info("Content reloaded",
		"file", w.cache.contentFile,
		"experiences", len(content.Experiences),
		"projects", len(content.Projects))
}
