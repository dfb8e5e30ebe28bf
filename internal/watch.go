package internal

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fsnotify/fsnotify"
)

// rearmRetries bounds the attempts to watch a file again after it was removed or replaced.
const rearmRetries = 10

// FileWatcher reports changes to a single data file. Bursts of events are coalesced into one notification sent after
// the file is quiet for the debounce delay.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	// Changes receives the path of the watched file after it changed. It never blocks the watcher: pending
	// notifications are merged.
	Changes chan string

	lock   sync.Mutex
	path   string
	timer  *time.Timer
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewFileWatcher takes ownership of the fsnotify watcher and starts processing its events.
func NewFileWatcher(watcher *fsnotify.Watcher, debounce time.Duration) *FileWatcher {
	ctx, cancel := context.WithCancel(context.Background())
	fw := &FileWatcher{
		watcher:  watcher,
		debounce: debounce,
		Changes:  make(chan string, 1),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go fw.loop()
	return fw
}

// Watch replaces the watched file (an empty path stops watching).
func (fw *FileWatcher) Watch(path string) error {
	if path != "" {
		var err error
		if path, err = filepath.Abs(path); err != nil {
			return err
		}
	}
	fw.lock.Lock()
	defer fw.lock.Unlock()
	if fw.path == path {
		return nil
	}
	if fw.path != "" {
		_ = fw.watcher.Remove(fw.path) // May have been removed already
	}
	fw.path = ""
	if path == "" {
		return nil
	}
	if err := fw.watcher.Add(path); err != nil {
		return err
	}
	fw.path = path
	return nil
}

// Path is the watched file, if any.
func (fw *FileWatcher) Path() string {
	fw.lock.Lock()
	defer fw.lock.Unlock()
	return fw.path
}

// Close stops watching and waits for the event loop to exit.
func (fw *FileWatcher) Close() error {
	fw.cancel()
	err := fw.watcher.Close()
	<-fw.done
	fw.lock.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.lock.Unlock()
	return err
}

func (fw *FileWatcher) loop() {
	defer close(fw.done)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handle(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Println("[PointPlot] File watcher error:", err)
		case <-fw.ctx.Done():
			return
		}
	}
}

func (fw *FileWatcher) handle(event fsnotify.Event) {
	path := fw.Path()
	if path == "" || filepath.Clean(event.Name) != path {
		return
	}
	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		// Editors often save by replacing the file: watch the new one as soon as it appears
		if err := fw.rearm(path); err != nil {
			fw.lock.Lock()
			if fw.path == path { // Watch(path) must add it again
				fw.path = ""
			}
			fw.lock.Unlock()
			log.Println("[PointPlot] Stopped watching", path+":", err)
			return
		}
	} else if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	fw.schedule(path)
}

func (fw *FileWatcher) rearm(path string) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 10 * time.Millisecond
	return backoff.Retry(func() error {
		fw.lock.Lock()
		defer fw.lock.Unlock()
		if fw.path != path {
			return backoff.Permanent(context.Canceled) // Watching another file now
		}
		return fw.watcher.Add(path)
	}, backoff.WithContext(backoff.WithMaxRetries(b, rearmRetries), fw.ctx))
}

func (fw *FileWatcher) schedule(path string) {
	fw.lock.Lock()
	defer fw.lock.Unlock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, func() {
		select {
		case fw.Changes <- path:
		default: // A notification is already pending
		}
	})
}
