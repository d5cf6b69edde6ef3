package theme

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/gophgallery/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// StaticSource is a SystemSource changed only through Set.
type StaticSource struct {
	mu       sync.Mutex
	dark     bool
	watchers []func(bool)
}

func Static(dark bool) *StaticSource {
	return &StaticSource{dark: dark}
}

func (s *StaticSource) PrefersDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

func (s *StaticSource) Watch(_ context.Context, fn func(bool)) error {
	s.mu.Lock()
	s.watchers = append(s.watchers, fn)
	s.mu.Unlock()
	return nil
}

// Set changes the preference and notifies watchers synchronously.
func (s *StaticSource) Set(dark bool) {
	s.mu.Lock()
	s.dark = dark
	watchers := append([]func(bool){}, s.watchers...)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(dark)
	}
}

// FileSource reads the preference from a file containing "dark" or "light".
// A missing or unreadable file means light.
type FileSource struct {
	path string
	log  logging.Logger
}

func NewFileSource(path string, log logging.Logger) *FileSource {
	if log == nil {
		log = logging.Nop{}
	}
	return &FileSource{path: filepath.Clean(path), log: log.With("component", "theme-file")}
}

func (f *FileSource) PrefersDark() bool {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return false
	}
	return string(bytes.ToLower(bytes.TrimSpace(raw))) == string(ModeDark)
}

// Watch observes the parent directory so the file may be created, replaced
// or removed while watched. fn is only called when the value changes.
func (f *FileSource) Watch(ctx context.Context, fn func(bool)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(f.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(f.path), err)
	}

	last := f.PrefersDark()
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != f.path {
					continue
				}
				if dark := f.PrefersDark(); dark != last {
					last = dark
					f.log.Debug(ctx, "system theme changed", "dark", dark, "op", event.Op.String())
					fn(dark)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				f.log.Warn(ctx, "watcher error", "error", err)
			}
		}
	}()
	return nil
}
