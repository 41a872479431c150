package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
)

// Watcher reloads an on-disk catalog directory into a Translator whenever a
// message file in it changes.
type Watcher struct {
	fs          afero.Fs
	dir         string
	defaultLang language.Tag
	translator  *Translator

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// NewWatcher creates a Watcher for dir. fs is used to read the files; the
// change notifications always come from the operating system.
func NewWatcher(fs afero.Fs, dir string, defaultLang language.Tag, t *Translator) *Watcher {
	return &Watcher{
		fs:          fs,
		dir:         dir,
		defaultLang: defaultLang,
		translator:  t,
	}
}

// Start begins watching and blocks until ctx is done or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	if err := fw.Add(w.dir); err != nil {
		fw.Close()
		return fmt.Errorf("watch catalog dir %s: %w", w.dir, err)
	}

	w.mu.Lock()
	w.watcher = fw
	w.mu.Unlock()
	defer w.Close()

	slog.Info("Watching message catalogs for changes", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("Catalog watcher error", "dir", w.dir, "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !isMessageFile(event.Name) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("Catalog file event", "event", event.Op.String(), "path", event.Name)
	if err := w.Reload(); err != nil {
		slog.Error("Failed to reload message catalog, keeping previous", "dir", w.dir, "error", err)
		return
	}
	slog.Info("Reloaded message catalog", "dir", w.dir, "trigger", event.Name)
}

// Reload re-reads the directory and swaps the result into the Translator.
// On error the active catalog is left untouched.
func (w *Watcher) Reload() error {
	c, err := Load(w.fs, w.dir, w.defaultLang)
	if err != nil {
		return err
	}
	w.translator.Swap(c)
	return nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}
