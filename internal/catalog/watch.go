package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const watchDebounce = 400 * time.Millisecond

// Watch reloads the provider whenever the file at path changes. Events are
// debounced because editors and sync tools emit bursts of writes. Watching
// is for file-backed sources only; it blocks until ctx is cancelled.
func (p *Provider) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: many tools replace files via rename, which drops
	// a watch on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	p.logger.Info("watching catalog file", zap.String("path", target))

	var mu sync.Mutex
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				if err := p.Reload(context.Background()); err != nil {
					p.logger.Warn("catalog reload after file change failed", zap.Error(err))
				}
			})
			mu.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.logger.Warn("catalog watch error", zap.Error(err))
		}
	}
}
