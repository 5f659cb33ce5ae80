package packs

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher signals when the pack directory changes so the UI can re-register
// definitions. Signals are coalesced: a burst of file events produces at
// most one pending notification.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}
}

// NewWatcher watches dir for pack changes.
func NewWatcher(dir string) (*Watcher, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, fmt.Errorf("pack: watch dir is required")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("pack: create watcher: %w", err)
	}
	if err := fw.Add(trimmed); err != nil {
		fw.Close()
		return nil, fmt.Errorf("pack: watch %s: %w", trimmed, err)
	}
	w := &Watcher{
		fs:      fw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes delivers one signal per batch of directory changes.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.fs.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default: // a signal is already pending
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !isYAMLFile(event.Name) && !strings.HasSuffix(strings.ToLower(event.Name), ".go") {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
