package config

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file whenever it changes on disk and publishes each
// configuration that loads and validates.
type Watcher struct {
	Path    string
	Changes <-chan *Config

	changes chan *Config
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ch := make(chan *Config, 4)
	return &Watcher{
		Path:    path,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start watches the file's directory, since editors often replace files on save.
// On failure the underlying watcher is released and Stop must not be called.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.Path)
	if err := w.watcher.Add(dir); err != nil {
		w.watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	const debounce = 200 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	target := filepath.Clean(w.Path)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case now := <-ticker.C:
			if pending.IsZero() || now.Sub(pending) < debounce {
				continue
			}
			pending = time.Time{}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[WARN] config watch: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.Path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		log.Printf("[WARN] config reload rejected: %v", err)
		return
	}
	log.Printf("[INFO] config reloaded from %s (%d profiles)", w.Path, len(cfg.Profiles))
	select {
	case w.changes <- cfg:
	default:
		log.Printf("[WARN] config reload dropped: previous change not consumed")
	}
}
