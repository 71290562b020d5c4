// Package watch reports settled changes to report files under a directory tree
// using github.com/fsnotify/fsnotify. Editors write a file several times per save,
// so a path fires once its events have been quiet for the debounce interval
package watch

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before a changed file is reported
const DefaultDebounce = 250 * time.Millisecond

// DefaultExts are the report file extensions watched when none are given
var DefaultExts = []string{".txt", ".md"}

// Options tune a Watcher
type Options struct {
	Exts     []string
	Debounce time.Duration
}

// Watcher calls back with paths of created or written report files
type Watcher struct {
	fw       *fsnotify.Watcher
	exts     map[string]bool
	debounce time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	done    chan struct{}
	stopped bool
	wg      sync.WaitGroup
}

// New creates a watcher; call Watch to start it
func New(o Options) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	exts := o.Exts
	if len(exts) == 0 {
		exts = DefaultExts
	}
	w := &Watcher{
		fw:       fw,
		exts:     make(map[string]bool, len(exts)),
		debounce: o.Debounce,
		timers:   map[string]*time.Timer{},
		done:     make(chan struct{}),
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	for _, e := range exts {
		w.exts[strings.ToLower(e)] = true
	}
	return w, nil
}

// Watch adds dir and its subdirectories, then reports settled changes to onChange
// from a background goroutine. errs, when set, receives watcher errors
func (w *Watcher) Watch(dir string, onChange func(path string), errs func(error)) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != abs && hidden(d.Name()) {
			return filepath.SkipDir
		}
		return w.fw.Add(p)
	})
	if err != nil {
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case ev, ok := <-w.fw.Events:
				if !ok {
					return
				}
				w.handle(ev, onChange)
			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				if errs != nil {
					errs(err)
				}
			case <-w.done:
				return
			}
		}
	}()
	return nil
}

func (w *Watcher) handle(ev fsnotify.Event, onChange func(string)) {
	if ev.Has(fsnotify.Create) {
		// new subdirectories join the watch
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			if !hidden(filepath.Base(ev.Name)) {
				_ = w.fw.Add(ev.Name)
			}
			return
		}
	}
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return
	}
	if !w.Relevant(ev.Name) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if t, ok := w.timers[ev.Name]; ok {
		t.Reset(w.debounce)
		return
	}
	path := ev.Name
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		if w.stopped {
			w.mu.Unlock()
			return
		}
		// joined under mu so Stop cannot start waiting before the Add
		w.wg.Add(1)
		w.mu.Unlock()

		defer w.wg.Done()
		onChange(path)
	})
}

// Relevant reports whether path is a watched report file
func (w *Watcher) Relevant(path string) bool {
	base := filepath.Base(path)
	if hidden(base) {
		return false
	}
	return w.exts[strings.ToLower(filepath.Ext(base))]
}

// Stop ends monitoring. Pending callbacks are dropped; one already running is
// waited for. Safe to call twice, but not from inside onChange
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	for p, t := range w.timers {
		t.Stop()
		delete(w.timers, p)
	}
	close(w.done)
	w.mu.Unlock()

	err := w.fw.Close()
	w.wg.Wait()
	return err
}

// editor swap files and dot dirs
func hidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~")
}
