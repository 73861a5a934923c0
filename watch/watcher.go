// Package watch notifies when any of the files feeding the juju segment
// change, so long-running consumers such as status lines can re-render.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/grovetools/juju-prompt/logging"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the quiet period used when none is given.
const DefaultDebounce = 100 * time.Millisecond

// maxSyncRounds bounds how often sync is repeated while directories along a
// target path keep appearing.
const maxSyncRounds = 16

// Watcher watches a set of files and calls onChange once per burst of
// changes to any of them.
//
// fsnotify cannot watch paths that do not exist yet and inotify resolves
// symlinks when a watch is added. For every target the Watcher therefore
// watches the deepest existing directory of its resolved path, plus the
// directory holding each symlink along the path, and moves those watches
// whenever an event changes the layout.
type Watcher struct {
	watcher  *fsnotify.Watcher
	targets  []string
	debounce time.Duration
	onChange func(file string)
	logger   *logrus.Entry

	// watched holds the directories currently added to the fsnotify watcher.
	watched map[string]bool
	// resolved maps each target to its path with symlinks evaluated.
	resolved map[string]string
	// links maps the resolved location of a symlink on a target path to
	// that target.
	links map[string]string
}

// New creates a Watcher for files.
func New(files []string, debounce time.Duration, onChange func(file string)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		watcher:  watcher,
		debounce: debounce,
		onChange: onChange,
		logger:   logging.NewLogger("watch"),
		watched:  make(map[string]bool),
	}
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			continue
		}
		w.targets = append(w.targets, abs)
	}

	w.sync()
	return w, nil
}

// sync brings the fsnotify watches in line with the current file system
// layout. It is repeated while it keeps adding watches, so directories
// created between two rounds are not missed.
func (w *Watcher) sync() {
	for i := 0; i < maxSyncRounds && w.syncOnce(); i++ {
	}
}

// syncOnce recomputes the directories to watch and reports whether a new
// watch was added.
func (w *Watcher) syncOnce() bool {
	desired := make(map[string]bool)
	w.resolved = make(map[string]string, len(w.targets))
	w.links = make(map[string]string)

	for _, target := range w.targets {
		real := resolve(target)
		w.resolved[target] = real
		if dir := existingAncestor(filepath.Dir(real)); dir != "" {
			desired[dir] = true
		}
		for _, link := range symlinksOn(target) {
			w.links[link] = target
			desired[filepath.Dir(link)] = true
		}
	}

	added := false
	for dir := range desired {
		if w.watched[dir] {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			w.logger.WithError(err).Warnf("Failed to watch %s", dir)
			continue
		}
		w.watched[dir] = true
		added = true
		w.logger.Debugf("Watching directory: %s", dir)
	}
	for dir := range w.watched {
		if desired[dir] {
			continue
		}
		// The directory may already be gone, which removes the watch too.
		_ = w.watcher.Remove(dir)
		delete(w.watched, dir)
		w.logger.Debugf("Stopped watching directory: %s", dir)
	}
	return added
}

// existingAncestor returns dir or its closest parent that exists.
func existingAncestor(dir string) string {
	for {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// resolve evaluates the symlinks in the existing part of path and appends
// the part that does not exist yet.
func resolve(path string) string {
	existing := path
	for {
		if _, err := os.Stat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return path
		}
		existing = parent
	}

	real, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return path
	}
	rest, err := filepath.Rel(existing, path)
	if err != nil {
		return path
	}
	return filepath.Join(real, rest)
}

// symlinksOn returns the resolved location of every symlink along path,
// such as /snap/juju/current for /snap/juju/current/meta/snap.yaml.
func symlinksOn(path string) []string {
	var links []string
	cur := string(filepath.Separator)
	for _, elem := range strings.Split(filepath.Clean(path), string(filepath.Separator)) {
		if elem == "" {
			continue
		}
		cur = filepath.Join(cur, elem)
		info, err := os.Lstat(cur)
		if err != nil {
			break
		}
		if info.Mode()&os.ModeSymlink == 0 {
			continue
		}
		parent, err := filepath.EvalSymlinks(filepath.Dir(cur))
		if err != nil {
			continue
		}
		links = append(links, filepath.Join(parent, elem))
	}
	return links
}

// affects reports which target, if any, an event on name concerns: the
// target itself, a directory on the way to it, or a symlink on its path.
func (w *Watcher) affects(name string) (string, bool) {
	if target, ok := w.links[name]; ok {
		return target, true
	}
	for _, target := range w.targets {
		if onPath(name, target) || onPath(name, w.resolved[target]) {
			return target, true
		}
	}
	return "", false
}

// onPath reports whether name is path or one of its parent directories.
func onPath(name, path string) bool {
	return path != "" && (name == path || strings.HasPrefix(path, name+string(filepath.Separator)))
}

// Start delivers change notifications until ctx is cancelled or the
// watcher is closed.
func (w *Watcher) Start(ctx context.Context) {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	var pending string
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			if event.Op == fsnotify.Chmod {
				continue
			}
			target, ok := w.affects(event.Name)
			if !ok {
				continue
			}
			if event.Name != w.resolved[target] {
				// A directory or symlink on the path changed.
				w.sync()
			}
			pending = target
			timer.Reset(w.debounce)

		case <-timer.C:
			w.logger.Debugf("Changed: %s", pending)
			if w.onChange != nil {
				w.onChange(pending)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Errorf("Watcher error: %v", err)

		case <-ctx.Done():
			w.watcher.Close()
			return
		}
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
