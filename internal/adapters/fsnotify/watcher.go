// Package fsnotify implements the ports.Watcher interface using
// github.com/fsnotify/fsnotify. It watches the directory containing a
// single database file, not the file itself, because cscope replaces
// the database by rename and a file watch would go stale. It filters
// events down to that one name, and debounces the rapid write bursts a
// rebuild produces.
package fsnotify

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleInterval is how long the file must stay quiet after the last
// event before onChange fires. cscope writes the symbol area and
// trailer in separate chunks.
const settleInterval = 200 * time.Millisecond

// Watcher implements ports.Watcher for one database file.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewWatcher creates a new database file watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring path. onChange fires once per settled
// rewrite of the file.
func (w *Watcher) Watch(path string, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("watch %s: containing directory does not exist", path)
	}
	if err := w.fw.Add(dir); err != nil {
		return err
	}

	go func() {
		var settle *time.Timer
		defer func() {
			if settle != nil {
				settle.Stop()
			}
		}()
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Rename) {
					continue
				}
				// Restart the settle timer; the callback fires only
				// after the rebuild has gone quiet.
				if settle != nil {
					settle.Stop()
				}
				settle = time.AfterFunc(settleInterval, onChange)

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed; fsnotify recovers automatically

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
