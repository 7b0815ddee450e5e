package clientcache

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher notifies local consumers when another process removes a cached
// key from a shared FileStore directory. A removal fires each registered
// callback exactly once; the key re-arms when the file is written again.
type Watcher struct {
	store   *FileStore
	watcher *fsnotify.Watcher

	mu        sync.Mutex
	callbacks map[string][]func() // file path -> callbacks
	fired     map[string]bool
}

func NewWatcher(store *FileStore) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(store.Dir()); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		store:     store,
		watcher:   fsw,
		callbacks: make(map[string][]func()),
		fired:     make(map[string]bool),
	}
	go w.run()
	return w, nil
}

// Watch registers a callback for one key's removal. Typically wired to a
// Fetcher's Invalidate.
func (w *Watcher) Watch(key string, callback func()) {
	path := w.store.Path(key)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks[path] = append(w.callbacks[path], callback)
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Warn("[CLIENTCACHE] watch error")
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	path := filepath.Clean(event.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	callbacks, watched := w.callbacks[path]
	if !watched {
		return
	}

	switch {
	case event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename):
		// some platforms report a removal as more than one event; fire once
		if w.fired[path] {
			return
		}
		w.fired[path] = true
		for _, callback := range callbacks {
			callback()
		}
	case event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write):
		w.fired[path] = false
	}
}
