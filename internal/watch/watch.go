// Package watch keeps the rename pipeline running against a drop folder:
// new receipts trigger a re-run after a quiet period.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Goldeenkkj/renomear-comprovantes/internal/config"
	"github.com/Goldeenkkj/renomear-comprovantes/internal/parser"
	"github.com/Goldeenkkj/renomear-comprovantes/internal/pipeline"
)

// Run performs an initial batch run, then watches the input directory and
// re-runs the pipeline whenever receipts are added or replaced. Each
// re-run regenerates the output directory, CSV log, report, and archive;
// runs are idempotent so this is safe. Blocks until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	if _, err := pipeline.Run(ctx, cfg, log); err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(cfg.InputDir); err != nil {
		return fmt.Errorf("watch %s: %w", cfg.InputDir, err)
	}
	log.Info("watching input directory", "dir", cfg.InputDir, "quiet", cfg.WatchQuiet.String())

	// Debounce: a copy of many files produces a burst of events; wait for
	// a quiet period before re-running.
	timer := time.NewTimer(cfg.WatchQuiet)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			log.Debug("input change", "file", filepath.Base(event.Name), "op", event.Op.String())
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(cfg.WatchQuiet)
			pending = true

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)

		case <-timer.C:
			pending = false
			if _, err := pipeline.Run(ctx, cfg, log); err != nil {
				// Setup errors are fatal at startup but transient here
				// (the directory may be mid-move); keep watching.
				log.Error("run failed", "error", err)
			}
		}
	}
}

// relevant filters events down to supported receipt files being created,
// written, or renamed into place.
func relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return parser.IsSupportedExtension(name)
}
