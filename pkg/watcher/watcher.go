package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ProjectWatcher wraps fsnotify for a single project directory and reports, debounced,
// when one of the trigger files changes. Directories are not watched recursively.
type ProjectWatcher struct {
	*fsnotify.Watcher
	dir      string
	triggers map[string]bool
}

// New watches dir and reacts to changes to any file named in triggers.
func New(dir string, triggers ...string) (*ProjectWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	set := make(map[string]bool, len(triggers))
	for _, t := range triggers {
		set[t] = true
	}
	return &ProjectWatcher{Watcher: w, dir: dir, triggers: set}, nil
}

// IsTrigger reports whether an event should cause a rebuild.
func (w *ProjectWatcher) IsTrigger(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return w.triggers[filepath.Base(event.Name)]
}

// Run delivers trigger events to onChange after debounce has elapsed without further
// events. Calls to onChange never overlap. Run returns when the watcher is closed.
func (w *ProjectWatcher) Run(debounce time.Duration, onChange func(), onError func(error)) {
	var (
		mu      sync.Mutex
		running sync.Mutex
		timer   *time.Timer
	)

	fire := func() {
		running.Lock()
		defer running.Unlock()
		onChange()
	}

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if !w.IsTrigger(event) {
				continue
			}
			// Editors often replace files on save, which drops the watch on some platforms.
			if event.Has(fsnotify.Rename) {
				if err := w.Add(w.dir); err != nil && onError != nil {
					onError(err)
				}
			}

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, fire)
			mu.Unlock()

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
