package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Loader reads catalog documents from disk and memoizes the resolved
// Catalog per source path. Only fully resolved catalogs enter the cache:
// a concurrent requester observes either no entry or a complete one,
// never a half-parsed set. A failed load caches nothing, so the next
// request retries.
type Loader struct {
	mu     sync.RWMutex
	cache  map[string]*Catalog
	group  singleflight.Group
	logger *zap.Logger

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewLoader returns a Loader. logger may be nil.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		cache:  make(map[string]*Catalog),
		logger: logger,
	}
}

// Load returns the resolved catalog for source, reading and resolving it
// on first use. Concurrent loads of the same source coalesce into one
// read.
func (l *Loader) Load(ctx context.Context, source string) (*Catalog, error) {
	l.mu.RLock()
	c, ok := l.cache[source]
	l.mu.RUnlock()
	if ok {
		return c, nil
	}

	v, err, _ := l.group.Do(source, func() (interface{}, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, err
		}
		c, err := Resolve(data, isYAMLPath(source))
		if err != nil {
			l.logger.Warn("catalog resolution failed",
				zap.String("source", source), zap.Error(err))
			return nil, err
		}
		l.mu.Lock()
		l.cache[source] = c
		l.mu.Unlock()
		l.logger.Info("catalog loaded",
			zap.String("source", source), zap.Int("units", c.Len()))
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Catalog), nil
}

// LoadAll loads several sources concurrently and returns the catalogs in
// source order. The first failure cancels the rest.
func (l *Loader) LoadAll(ctx context.Context, sources ...string) ([]*Catalog, error) {
	out := make([]*Catalog, len(sources))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, source := range sources {
		i, source := i, source
		eg.Go(func() error {
			c, err := l.Load(egCtx, source)
			if err != nil {
				return err
			}
			out[i] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Invalidate drops the cached catalog for source, forcing a reload on
// the next request.
func (l *Loader) Invalidate(source string) {
	l.mu.Lock()
	delete(l.cache, source)
	l.mu.Unlock()
}

// Watch starts invalidating cached sources when their files change on
// disk. It watches the parent directories of the given sources so that
// editor rename-and-replace saves are seen. Watching is optional; Close
// shuts it down.
func (l *Loader) Watch(sources ...string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	watched := make(map[string]bool, len(sources))
	dirs := make(map[string]bool)
	for _, s := range sources {
		abs, err := filepath.Abs(s)
		if err != nil {
			w.Close()
			return err
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return err
		}
	}

	l.mu.Lock()
	l.watcher = w
	l.stopCh = make(chan struct{})
	l.doneCh = make(chan struct{})
	l.mu.Unlock()

	go l.watchLoop(w, watched, sources)
	return nil
}

func (l *Loader) watchLoop(w *fsnotify.Watcher, watched map[string]bool, sources []string) {
	defer close(l.doneCh)
	for {
		select {
		case <-l.stopCh:
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !watched[abs] {
				continue
			}
			for _, s := range sources {
				if sabs, err := filepath.Abs(s); err == nil && sabs == abs {
					l.logger.Debug("catalog source changed, dropping cache",
						zap.String("source", s), zap.String("op", event.Op.String()))
					l.Invalidate(s)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			l.logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}

// Close stops the watcher, if one is running.
func (l *Loader) Close() error {
	l.mu.Lock()
	w, stop, done := l.watcher, l.stopCh, l.doneCh
	l.watcher, l.stopCh, l.doneCh = nil, nil, nil
	l.mu.Unlock()

	if w == nil {
		return nil
	}
	close(stop)
	err := w.Close()
	<-done
	return err
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
