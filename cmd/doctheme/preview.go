package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/doctheme/internal/engine"
	"git.home.luguber.info/inful/doctheme/internal/logfields"
	"git.home.luguber.info/inful/doctheme/internal/theme"
)

// debounceWindow coalesces editor write bursts into one rebuild.
const debounceWindow = 250 * time.Millisecond

// watchAndRebuild generates once, then watches the options file, the
// manifest, and every configured static markdown file, regenerating on
// change until ctx is canceled. Rebuild failures are reported and watching
// continues; only watcher setup errors abort.
func watchAndRebuild(ctx context.Context, manifestPath, outOverride string) error {
	rebuild := func() error {
		opts, project, err := loadInputs(manifestPath, outOverride)
		if err != nil {
			return err
		}
		// A fresh theme per rebuild: the render-context cache is scoped to
		// one generation run.
		th := theme.New(engine.New(opts.Out), opts)
		return th.Generate(project)
	}

	if err := rebuild(); err != nil {
		return err
	}

	opts, _, err := loadInputs(manifestPath, outOverride)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Warn("Failed to close watcher", logfields.Error(err))
		}
	}()

	// Watch parent directories rather than files so editors that replace
	// files on save (rename + create) keep triggering events.
	watched := map[string]bool{}
	addPath := func(p string) {
		dir := filepath.Dir(p)
		if watched[dir] {
			return
		}
		if err := watcher.Add(dir); err != nil {
			slog.Warn("Failed to watch directory", logfields.Path(dir), logfields.Error(err))
			return
		}
		watched[dir] = true
	}
	addPath(CLI.Options)
	addPath(manifestPath)
	for _, doc := range opts.StaticMarkdownDocs {
		addPath(doc.FilePath)
	}
	slog.Info("Watching for changes", "dirs", len(watched))

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Preview stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("Change detected", "path", event.Name, "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		case <-pending:
			if err := rebuild(); err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
				continue
			}
			slog.Info("Rebuilt documentation")
		}
	}
}
