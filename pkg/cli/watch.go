package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cartforge/cartlint/pkg/console"
	"github.com/cartforge/cartlint/pkg/linter"
	"github.com/cartforge/cartlint/pkg/logger"
)

var watchLog = logger.New("cli:watch")

// debounceInterval coalesces editor save bursts (write + chmod + rename)
// into a single revalidation.
const debounceInterval = 200 * time.Millisecond

// watchAndValidate revalidates path every time it changes, printing a fresh
// report on each pass. The parent directory is watched rather than the file
// itself so atomic-rename saves keep working. Blocks until the watcher fails.
func watchAndValidate(w io.Writer, lint *linter.Linter, path string, quiet bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	fmt.Fprintln(w, console.FormatInfoMessage(fmt.Sprintf("watching %s for changes", path)))

	revalidate := func() {
		report, err := lint.LintFile(path)
		printReport(w, DocumentResult{
			Path:   path,
			Valid:  err == nil && report.Valid(),
			Report: report,
			Err:    err,
		}, quiet)
	}
	revalidate()

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			watchLog.Printf("Change detected: %s (%s)", event.Name, event.Op)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceInterval, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			revalidate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("file watcher failed: %w", err)
		}
	}
}
