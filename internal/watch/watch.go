// Package watch reports debounced changes to a single document file.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename-and-replace keep producing events.
package watch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when Options.Debounce is zero.
const DefaultDebounce = 100 * time.Millisecond

// ChangeKind describes the type of file change detected.
type ChangeKind int

// Change kinds.
const (
	ChangeModified ChangeKind = iota // written, created or replaced
	ChangeRemoved                    // no longer present
)

// String returns a lower-case name for the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeModified:
		return "modified"
	case ChangeRemoved:
		return "removed"
	}
	return fmt.Sprintf("ChangeKind(%d)", int(k))
}

// Change is one debounced change to the watched file.
type Change struct {
	Kind ChangeKind
	File string
}

// Options configures a Watcher.
type Options struct {
	Debounce time.Duration
}

// Watcher monitors one file for changes using fsnotify.
type Watcher struct {
	File    string
	Changes <-chan Change // Read-only external channel
	Errors  <-chan error

	changes  chan Change
	errs     chan error
	stop     chan struct{}
	done     chan struct{}
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// New creates a watcher for path. Call Start to begin delivering changes.
func New(path string, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	ch := make(chan Change, 16)
	errs := make(chan error, 4)
	return &Watcher{
		File:     abs,
		Changes:  ch,
		Errors:   errs,
		changes:  ch,
		errs:     errs,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		debounce: debounce,
		watcher:  fw,
	}, nil
}

// Start begins watching the file's directory.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.File)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(w.File), err)
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and waits for the loop to exit. A change that no
// reader is waiting for is dropped. The Changes and Errors channels are
// closed afterwards.
func (w *Watcher) Stop() {
	close(w.stop)
	w.watcher.Close()
	<-w.done
	close(w.changes)
	close(w.errs)
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if !pending.IsZero() {
					w.emit()
				}
				return
			}
			if filepath.Clean(event.Name) != w.File {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= w.debounce {
				w.emit()
				pending = time.Time{}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; forward without blocking.
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

func (w *Watcher) emit() {
	kind := ChangeModified
	if _, err := os.Stat(w.File); errors.Is(err, os.ErrNotExist) {
		kind = ChangeRemoved
	}
	select {
	case w.changes <- Change{Kind: kind, File: w.File}:
	case <-w.stop:
	}
}
