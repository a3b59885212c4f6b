package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	xerrors "git.home.luguber.info/inful/prefgen/internal/errors"
)

// WatchCmd implements the 'watch' command: regenerate all configured outputs
// whenever the input document changes. Generation failures are logged and
// watching continues, so a half-typed document doesn't kill the session.
type WatchCmd struct {
	GenerateCmd `embed:""`

	Debounce time.Duration `default:"200ms" help:"Settle delay before regenerating after a change"`
}

// Run executes the watch command until interrupted.
func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	opts, err := w.resolve(root.Config)
	if err != nil {
		return err
	}

	// Watch the directory, not the file: editors typically replace the
	// file on save, which would drop a direct watch.
	dir := filepath.Dir(opts.input)
	base := filepath.Base(opts.input)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return xerrors.Wrap(err, xerrors.CategoryInternal, xerrors.SeverityFatal, "creating file watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return xerrors.Wrap(err, xerrors.CategoryFileSystem, xerrors.SeverityFatal, "watching "+dir)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := generateAll(opts); err != nil {
		slog.Error("Initial generation failed", "error", err)
	}
	slog.Info("Watching for changes", "input", opts.input)

	debounce := time.NewTimer(w.Debounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			slog.Info("Shutdown signal received")
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debounce.Reset(w.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watch error", "error", err)

		case <-debounce.C:
			slog.Debug("Input changed, regenerating", "input", opts.input)
			if err := generateAll(opts); err != nil {
				slog.Error("Regeneration failed", "error", err)
			}
		}
	}
}
