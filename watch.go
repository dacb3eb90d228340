package anima

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads a config file whenever it changes on disk. Reloaded
// configs are delivered on a channel holding at most one pending value; an
// older config that was never received is replaced by the newer one.
type ConfigWatcher struct {
	path    string
	w       *fsnotify.Watcher
	configs chan RunConfig
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// WatchConfig starts watching path. The directory is watched rather than the
// file so that editors which replace the file on save are still seen.
func WatchConfig(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("anima: watch config %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("anima: watch config %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("anima: watch config %s: %w", path, err)
	}

	cw := &ConfigWatcher{
		path:    abs,
		w:       w,
		configs: make(chan RunConfig, 1),
		done:    make(chan struct{}),
	}
	cw.wg.Add(1)
	go cw.eventLoop()
	return cw, nil
}

// Path returns the absolute path being watched.
func (cw *ConfigWatcher) Path() string {
	return cw.path
}

func (cw *ConfigWatcher) eventLoop() {
	defer cw.wg.Done()
	for {
		select {
		case <-cw.done:
			return
		case err, ok := <-cw.w.Errors:
			if !ok {
				return
			}
			Logger().Warn("anima: config watcher error", "path", cw.path, "err", err)
		case ev, ok := <-cw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != cw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cw.reload()
		}
	}
}

func (cw *ConfigWatcher) reload() {
	cfg, err := LoadConfig(cw.path)
	if err != nil {
		// Half-written files fail to parse; the next write event retries.
		Logger().Warn("anima: config reload failed", "path", cw.path, "err", err)
		return
	}
	Logger().Info("anima: config reloaded", "path", cw.path)

	for {
		select {
		case cw.configs <- cfg:
			return
		case <-cw.done:
			return
		default:
		}
		select {
		case <-cw.configs:
		default:
		}
	}
}

// Configs returns the channel reloaded configs are delivered on.
func (cw *ConfigWatcher) Configs() <-chan RunConfig {
	return cw.configs
}

// Poll returns the pending reloaded config, if any, without blocking.
func (cw *ConfigWatcher) Poll() (RunConfig, bool) {
	select {
	case cfg := <-cw.configs:
		return cfg, true
	default:
		return RunConfig{}, false
	}
}

// Close stops the watcher and waits for its goroutine to exit. It is safe to
// call more than once.
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.done)
		err = cw.w.Close()
		cw.wg.Wait()
	})
	return err
}
