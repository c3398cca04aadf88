package level

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Reload carries a freshly parsed level for the level at Index.
type Reload struct {
	Index int
	Level *GameLevel
}

// Watcher reparses level files when they change on disk and publishes the
// result on Updates. Parsing happens on the watcher's goroutine; applying the
// reload is left to the consumer so the simulation stays single-threaded.
type Watcher struct {
	fsw     *fsnotify.Watcher
	indices map[string]int
	width   float32
	height  float32

	updates   chan Reload
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewWatcher starts watching the given level files. The parent directories are
// watched rather than the files so that editors that save by renaming are seen.
//
// Parameters:
//   - paths: level files, indexed as in the game's level list
//   - width: play area width used to lay out reloaded levels
//   - height: play area height used to lay out reloaded levels
//
// Returns:
//   - *Watcher: the running watcher
//   - error: error if the underlying watcher cannot be created
func NewWatcher(paths []string, width, height float32) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create level watcher: %w", err)
	}

	w := &Watcher{
		fsw:     fsw,
		indices: make(map[string]int, len(paths)),
		width:   width,
		height:  height,
		updates: make(chan Reload, 8),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for i, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to resolve level path %s: %w", p, err)
		}
		w.indices[abs] = i
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch level directory %s: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Updates returns the channel reloaded levels are published on.
func (w *Watcher) Updates() <-chan Reload {
	return w.updates
}

// Close stops the watcher. Safe to call multiple times.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil {
				continue
			}
			idx, ok := w.indices[abs]
			if !ok {
				continue
			}
			lvl, err := LoadFile(abs, w.width, w.height)
			if err != nil {
				// Partial writes show up as parse errors; the next write event retries.
				slog.Warn("[Level] reload skipped", "path", abs, "err", err)
				continue
			}
			slog.Info("[Level] reloaded", "path", abs, "bricks", len(lvl.Bricks))
			select {
			case w.updates <- Reload{Index: idx, Level: lvl}:
			case <-w.done:
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Error("[Level] watcher error", "err", err)
		}
	}
}
