// This file implements a file system watcher for an exported bookmarks file.
// Changes to the file are debounced and then loaded as a new view.

package watcher

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vrsandeep/mango-marks/internal/bookmarks"
	"github.com/vrsandeep/mango-marks/internal/models"
)

// Source is the load source reported for file-triggered loads.
const Source = "file"

// Loader starts a background load. loads.Manager implements it.
type Loader interface {
	Start(ctx context.Context, source string, nodes []models.RawNode) uint64
}

// WatcherService watches a bookmarks file and reloads it whenever it is
// created, rewritten or replaced.
type WatcherService struct {
	path          string
	loader        Loader
	watcher       *fsnotify.Watcher
	mu            sync.Mutex
	debounceTimer *time.Timer
	debounceDelay time.Duration
	stopChan      chan struct{}
}

// NewWatcherService creates a watcher for path. A non-positive debounce
// uses two seconds.
func NewWatcherService(path string, debounce time.Duration, loader Loader) *WatcherService {
	if debounce <= 0 {
		debounce = 2 * time.Second // Wait 2 seconds after last change before loading
	}
	return &WatcherService{
		path:          filepath.Clean(path),
		loader:        loader,
		debounceDelay: debounce,
		stopChan:      make(chan struct{}),
	}
}

// Start begins watching. The parent directory is watched so that editors
// and browsers which replace the file atomically are still noticed. An
// existing file is loaded immediately.
func (w *WatcherService) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return err
	}
	log.Printf("File watcher started for bookmarks: %s", w.path)

	go w.processEvents()

	if _, err := os.Stat(w.path); err == nil {
		w.LoadNow()
	}
	return nil
}

// Stop stops the file watcher service.
func (w *WatcherService) Stop() error {
	close(w.stopChan)
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

func (w *WatcherService) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-w.stopChan:
			return
		}
	}
}

func (w *WatcherService) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	// Renames land as a Create of the target name; Rename on the target
	// itself means it was moved away.
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, w.LoadNow)
}

// LoadNow reads the file and starts a load. Unreadable or malformed files
// are logged and leave the current view alone.
func (w *WatcherService) LoadNow() {
	nodes, err := bookmarks.Load(w.path)
	if err != nil {
		log.Printf("Could not load bookmarks from %s: %v", w.path, err)
		return
	}
	token := w.loader.Start(context.Background(), Source, nodes)
	log.Printf("Bookmarks file changed, started load %d", token)
}
